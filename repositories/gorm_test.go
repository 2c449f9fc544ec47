package repositories

import (
	"errors"
	"testing"
	"time"

	"hotel-reservas/config"
	"hotel-reservas/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteRepository runs GormRepository on a private in-memory SQLite database
// with foreign keys enforced.
func newSQLiteRepository(t *testing.T) *GormRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormRepository(db)
}

func seedGorm(t *testing.T, repo Repository) (*models.Room, *models.Customer) {
	t.Helper()
	room := &models.Room{Number: 101, MaxCapacity: 2, NightlyRate: 400, Vacant: true}
	customer := &models.Customer{FirstName: "Juan", LastName: "Azevedo", Phone: "21996289958", Email: "juan@example.com"}
	if err := repo.CreateRoom(room); err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if err := repo.CreateCustomer(customer); err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}
	return room, customer
}

func TestGormTransactionRollback(t *testing.T) {
	repo := newSQLiteRepository(t)
	room, _ := seedGorm(t, repo)
	boom := errors.New("boom")

	err := repo.Transaction(func(tx Repository) error {
		if err := tx.SetRoomVacant(room.ID, false); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction() error = %v, want %v", err, boom)
	}

	stored, err := repo.FindRoom(room.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.Vacant {
		t.Error("vago changed by a rolled back transaction")
	}
}

func TestGormNotFound(t *testing.T) {
	repo := newSQLiteRepository(t)

	if _, err := repo.FindRoom(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRoom() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindCustomer(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindCustomer() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindReservation(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindReservation() error = %v, want ErrNotFound", err)
	}
	if n, err := repo.UpdateRoomRates(42, 2, 100); err != nil || n != 0 {
		t.Errorf("UpdateRoomRates(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestGormUniqueConstraints(t *testing.T) {
	repo := newSQLiteRepository(t)
	_, customer := seedGorm(t, repo)

	err := repo.CreateRoom(&models.Room{Number: 101, MaxCapacity: 3, NightlyRate: 500, Vacant: true})
	if dup := IsDuplicate(err); dup == nil || dup.Field != "numero" {
		t.Errorf("duplicate room error = %v, want numero duplicate", err)
	}

	err = repo.CreateCustomer(&models.Customer{FirstName: "Ana", LastName: "Lima", Phone: "21911112222", Email: customer.Email})
	if dup := IsDuplicate(err); dup == nil || dup.Field != "email" {
		t.Errorf("duplicate email error = %v, want email duplicate", err)
	}

	other := &models.Customer{FirstName: "Ana", LastName: "Lima", Phone: "21911112222", Email: "ana@example.com"}
	if err := repo.CreateCustomer(other); err != nil {
		t.Fatal(err)
	}
	other.Phone = customer.Phone
	_, err = repo.UpdateCustomer(other)
	if dup := IsDuplicate(err); dup == nil || dup.Field != "celular" {
		t.Errorf("duplicate celular error = %v, want celular duplicate", err)
	}
}

func TestGormReservationRoundTrip(t *testing.T) {
	repo := newSQLiteRepository(t)
	room, customer := seedGorm(t, repo)

	reservation := &models.Reservation{
		RoomID:     room.ID,
		CustomerID: customer.ID,
		CheckIn:    models.NewDate(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)),
		CheckOut:   models.NewDate(time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)),
		PartySize:  2,
	}
	if err := repo.CreateReservation(reservation); err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	reservation.PartySize = 1
	if err := repo.SaveReservation(reservation); err != nil {
		t.Fatalf("SaveReservation() error = %v", err)
	}

	list, err := repo.ListReservations()
	if err != nil || len(list) != 1 {
		t.Fatalf("ListReservations() = %d, %v; want 1", len(list), err)
	}
	got := list[0]
	if got.Room.Number != 101 || got.Customer.FirstName != "Juan" {
		t.Errorf("joined room/customer = %d/%q, want 101/Juan", got.Room.Number, got.Customer.FirstName)
	}
	if models.FormatDate(got.CheckIn) != "2030-06-01" || models.FormatDate(got.CheckOut) != "2030-06-03" {
		t.Errorf("stay = %s..%s, want 2030-06-01..2030-06-03", models.FormatDate(got.CheckIn), models.FormatDate(got.CheckOut))
	}
	if got.PartySize != 1 || got.Nights() != 2 {
		t.Errorf("party/nights = %d/%d, want 1/2", got.PartySize, got.Nights())
	}

	if n, _ := repo.CountReservationsByCustomer(customer.ID); n != 1 {
		t.Errorf("CountReservationsByCustomer() = %d, want 1", n)
	}

	if err := repo.DeleteRoom(room.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.FindReservation(reservation.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindReservation() after room delete error = %v, want ErrNotFound", err)
	}
}
