package repositories

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservas/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry = 1062
	sqliteUniqueFailed  = "UNIQUE constraint failed"
)

// GormRepository is the relational Repository used in production.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(fn func(tx Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

// ----------------------------------------------------
// Rooms
// ----------------------------------------------------

func (r *GormRepository) ListRooms(onlyVacant bool) ([]models.Room, error) {
	var rooms []models.Room
	q := r.db.Order("id")
	if onlyVacant {
		q = q.Where("vago = ?", true)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *GormRepository) FindRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find room")
	}
	return &room, nil
}

func (r *GormRepository) RoomNumberExists(number int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Room{}).Where("numero = ?", number).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check room number: %w", err)
	}
	return count > 0, nil
}

func (r *GormRepository) CreateRoom(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return duplicateOr(err, "failed to create room")
	}
	return nil
}

func (r *GormRepository) UpdateRoomRates(id uint, maxCapacity int, nightlyRate float64) (int64, error) {
	result := r.db.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}{
		"capacidade_maxima": maxCapacity,
		"valor_diaria":      nightlyRate,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update room %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormRepository) SetRoomVacant(id uint, vacant bool) error {
	if err := r.db.Model(&models.Room{}).Where("id = ?", id).Update("vago", vacant).Error; err != nil {
		return fmt.Errorf("failed to set vacancy of room %d: %w", id, err)
	}
	return nil
}

func (r *GormRepository) DeleteRoom(id uint) error {
	if err := r.db.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}

// ----------------------------------------------------
// Customers
// ----------------------------------------------------

func (r *GormRepository) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *GormRepository) FindCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find customer")
	}
	return &customer, nil
}

func (r *GormRepository) CreateCustomer(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return duplicateOr(err, "failed to create customer")
	}
	return nil
}

func (r *GormRepository) UpdateCustomer(customer *models.Customer) (int64, error) {
	result := r.db.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
		"nome":      customer.FirstName,
		"sobrenome": customer.LastName,
		"celular":   customer.Phone,
		"email":     customer.Email,
	})
	if result.Error != nil {
		return 0, duplicateOr(result.Error, "failed to update customer")
	}
	return result.RowsAffected, nil
}

func (r *GormRepository) DeleteCustomer(id uint) error {
	if err := r.db.Delete(&models.Customer{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}

func (r *GormRepository) CountReservationsByCustomer(customerID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Reservation{}).Where("cliente_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reservations of customer %d: %w", customerID, err)
	}
	return count, nil
}

// ----------------------------------------------------
// Reservations
// ----------------------------------------------------

func (r *GormRepository) ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Preload("Room").
		Preload("Customer").
		Order("id").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (r *GormRepository) FindReservation(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find reservation")
	}
	return &reservation, nil
}

func (r *GormRepository) CreateReservation(reservation *models.Reservation) error {
	if err := r.db.Omit("Room", "Customer").Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *GormRepository) SaveReservation(reservation *models.Reservation) error {
	if err := r.db.Omit("Room", "Customer").Save(reservation).Error; err != nil {
		return fmt.Errorf("failed to save reservation %d: %w", reservation.ID, err)
	}
	return nil
}

func (r *GormRepository) DeleteReservation(id uint) error {
	if err := r.db.Delete(&models.Reservation{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// duplicateOr maps unique-key violations to *DuplicateError: MySQL 1062, or the
// "UNIQUE constraint failed" message of SQLite. The offending column is read
// from the key name ("... for key 'cliente.idx_cliente_email'") or the
// constraint target ("UNIQUE constraint failed: cliente.email").
func duplicateOr(err error, msg string) error {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) && merr.Number == mysqlDuplicateEntry {
		return &DuplicateError{Field: duplicateField(merr.Message)}
	}
	if strings.Contains(err.Error(), sqliteUniqueFailed) {
		return &DuplicateError{Field: duplicateField(err.Error())}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func duplicateField(message string) string {
	idx := strings.LastIndex(message, "for key")
	if idx < 0 {
		idx = strings.LastIndex(message, sqliteUniqueFailed)
	}
	if idx < 0 {
		return ""
	}
	key := strings.ToLower(message[idx:])
	for _, field := range []string{"numero", "celular", "email"} {
		if strings.Contains(key, field) {
			return field
		}
	}
	return ""
}
