package services

import "errors"

// Business rule failures. Controllers translate them to HTTP statuses.
var (
	ErrRoomNotFound            = errors.New("room_not_found")
	ErrRoomOccupied            = errors.New("room_occupied")
	ErrDuplicateRoomNumber     = errors.New("duplicate_room_number")
	ErrCustomerNotFound        = errors.New("customer_not_found")
	ErrCustomerHasReservations = errors.New("customer_has_reservations")
	ErrDuplicatePhone          = errors.New("duplicate_celular")
	ErrDuplicateEmail          = errors.New("duplicate_email")
	ErrReservationNotFound     = errors.New("reservation_not_found")
	ErrCapacityExceeded        = errors.New("capacity_exceeded")
	ErrInvalidDateRange        = errors.New("invalid_date_range")
)
