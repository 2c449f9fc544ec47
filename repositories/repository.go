package repositories

import (
	"errors"
	"fmt"

	"hotel-reservas/models"
)

var ErrNotFound = errors.New("record not found")

// DuplicateError reports a unique constraint violation on Field
// ("numero", "celular" or "email"; empty when the driver did not say).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return "duplicate entry"
	}
	return fmt.Sprintf("duplicate entry for %s", e.Field)
}

// IsDuplicate returns the DuplicateError wrapped in err, or nil.
func IsDuplicate(err error) *DuplicateError {
	if err == nil {
		return nil
	}

	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup
	}
	return nil
}

// Repository is the persistence boundary for rooms, customers and reservations.
// Lookups by id return ErrNotFound when the row does not exist.
type Repository interface {
	// Transaction runs fn against a transactional view; fn's error rolls everything back.
	Transaction(fn func(tx Repository) error) error

	ListRooms(onlyVacant bool) ([]models.Room, error)
	FindRoom(id uint) (*models.Room, error)
	RoomNumberExists(number int) (bool, error)
	CreateRoom(room *models.Room) error
	// UpdateRoomRates returns the number of rows touched; zero is not an error.
	UpdateRoomRates(id uint, maxCapacity int, nightlyRate float64) (int64, error)
	SetRoomVacant(id uint, vacant bool) error
	DeleteRoom(id uint) error

	ListCustomers() ([]models.Customer, error)
	FindCustomer(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	// UpdateCustomer overwrites every field of the row with customer.ID.
	UpdateCustomer(customer *models.Customer) (int64, error)
	DeleteCustomer(id uint) error
	CountReservationsByCustomer(customerID uint) (int64, error)

	// ListReservations returns reservations with Room and Customer loaded.
	ListReservations() ([]models.Reservation, error)
	FindReservation(id uint) (*models.Reservation, error)
	CreateReservation(reservation *models.Reservation) error
	SaveReservation(reservation *models.Reservation) error
	DeleteReservation(id uint) error
}
