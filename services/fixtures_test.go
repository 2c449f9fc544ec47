package services

import (
	"testing"

	"hotel-reservas/config"
	"hotel-reservas/models"
	"hotel-reservas/repositories"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// store opens an empty repository.
type store func(t *testing.T) repositories.Repository

func memoryStore(*testing.T) repositories.Repository {
	return repositories.NewMemoryRepository()
}

// gormStore backs GormRepository with a private in-memory SQLite database.
// Foreign keys are switched on so the reserva cascades behave like MySQL.
func gormStore(t *testing.T) repositories.Repository {
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
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repositories.NewGormRepository(db)
}

// forEachStore runs fn once per Repository implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, open store)) {
	stores := []struct {
		name string
		open store
	}{
		{name: "memory", open: memoryStore},
		{name: "gorm", open: gormStore},
	}
	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			fn(t, s.open)
		})
	}
}

type fixture struct {
	repo     repositories.Repository
	room     models.Room
	other    models.Room
	customer models.Customer
}

// newFixture seeds two vacant rooms (capacity 2 and 4) and one customer.
func newFixture(t *testing.T, open store) *fixture {
	t.Helper()

	repo := open(t)
	room := models.Room{Number: 101, MaxCapacity: 2, NightlyRate: 400, Vacant: true}
	other := models.Room{Number: 102, MaxCapacity: 4, NightlyRate: 650, Vacant: true}
	customer := models.Customer{FirstName: "Juan", LastName: "Azevedo", Phone: "21996289958", Email: "juan@example.com"}

	if err := repo.CreateRoom(&room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	if err := repo.CreateRoom(&other); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	if err := repo.CreateCustomer(&customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	return &fixture{repo: repo, room: room, other: other, customer: customer}
}

func (f *fixture) input() ReservationInput {
	return ReservationInput{
		RoomID:     f.room.ID,
		CustomerID: f.customer.ID,
		CheckIn:    "2030-06-01",
		CheckOut:   "2030-06-02",
		PartySize:  2,
	}
}

func (f *fixture) vacant(t *testing.T, roomID uint) bool {
	t.Helper()
	room, err := f.repo.FindRoom(roomID)
	if err != nil {
		t.Fatalf("FindRoom(%d): %v", roomID, err)
	}
	return room.Vacant
}

func (f *fixture) reservationCount(t *testing.T) int {
	t.Helper()
	list, err := f.repo.ListReservations()
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	return len(list)
}
