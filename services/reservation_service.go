// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservas/config"
	"hotel-reservas/models"
	"hotel-reservas/repositories"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ReservationInput carries a create or edit request after field validation.
// Dates stay in their YYYY-MM-DD wire form; ParseStay turns them into dates.
type ReservationInput struct {
	RoomID     uint
	CustomerID uint
	CheckIn    string
	CheckOut   string
	PartySize  int
}

// ReservationService keeps room vacancy consistent with reservations.
// It is the only writer of Room.Vacant after a room is created.
type ReservationService struct {
	Repo repositories.Repository

	// OccupyRoomOnEdit marks the destination room occupied when an edit moves a
	// reservation. Off by default: the old room is vacated and the new one is left as is.
	OccupyRoomOnEdit bool
}

func NewReservationService(repo repositories.Repository, occupyRoomOnEdit bool) *ReservationService {
	return &ReservationService{Repo: repo, OccupyRoomOnEdit: occupyRoomOnEdit}
}

// ParseStay parses both dates and requires checkOut to fall after checkIn.
func ParseStay(checkIn, checkOut string) (datatypes.Date, datatypes.Date, error) {
	in, err := time.Parse(models.DateLayout, checkIn)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, fmt.Errorf("%w: check-in %q", ErrInvalidDateRange, checkIn)
	}
	out, err := time.Parse(models.DateLayout, checkOut)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, fmt.Errorf("%w: check-out %q", ErrInvalidDateRange, checkOut)
	}
	if !out.After(in) {
		return datatypes.Date{}, datatypes.Date{}, fmt.Errorf("%w: check-out %s is not after check-in %s", ErrInvalidDateRange, checkOut, checkIn)
	}
	return models.NewDate(in), models.NewDate(out), nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	return s.Repo.ListReservations()
}

// Create books a vacant room. The reservation insert and the room flip to
// occupied commit together.
func (s *ReservationService) Create(in ReservationInput) (*models.Reservation, error) {
	var created *models.Reservation

	err := s.Repo.Transaction(func(tx repositories.Repository) error {
		if _, err := tx.FindCustomer(in.CustomerID); err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		room, err := tx.FindRoom(in.RoomID)
		if err != nil {
			return lookupErr(err, ErrRoomNotFound)
		}
		if !room.Vacant {
			return ErrRoomOccupied
		}
		if in.PartySize > room.MaxCapacity {
			return ErrCapacityExceeded
		}

		checkIn, checkOut, err := ParseStay(in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}

		reservation := &models.Reservation{
			RoomID:     room.ID,
			CustomerID: in.CustomerID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			PartySize:  in.PartySize,
		}
		if err := tx.CreateReservation(reservation); err != nil {
			return err
		}
		if err := tx.SetRoomVacant(room.ID, false); err != nil {
			return err
		}

		created = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Info("reservation created",
		zap.Uint("reservation_id", created.ID),
		zap.Uint("room_id", created.RoomID),
		zap.Uint("customer_id", created.CustomerID),
	)
	return created, nil
}

// Edit replaces every field of reservation id. It reports changed=false, and
// writes nothing, when the input equals the stored reservation.
//
// Moving to another room vacates the old one. The new room is only marked
// occupied when OccupyRoomOnEdit is set.
func (s *ReservationService) Edit(id uint, in ReservationInput) (*models.Reservation, bool, error) {
	var (
		result  *models.Reservation
		changed bool
	)

	err := s.Repo.Transaction(func(tx repositories.Repository) error {
		current, err := tx.FindReservation(id)
		if err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}

		roomChanged := in.RoomID != current.RoomID
		if roomChanged {
			newRoom, err := tx.FindRoom(in.RoomID)
			if err != nil {
				return lookupErr(err, ErrRoomNotFound)
			}
			if !newRoom.Vacant {
				return ErrRoomOccupied
			}
		}

		if in.CustomerID != current.CustomerID {
			if _, err := tx.FindCustomer(in.CustomerID); err != nil {
				return lookupErr(err, ErrCustomerNotFound)
			}
		}

		checkIn, checkOut, err := ParseStay(in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}

		if !roomChanged &&
			in.CustomerID == current.CustomerID &&
			in.PartySize == current.PartySize &&
			models.FormatDate(checkIn) == models.FormatDate(current.CheckIn) &&
			models.FormatDate(checkOut) == models.FormatDate(current.CheckOut) {
			result = current
			return nil
		}

		if roomChanged {
			if err := tx.SetRoomVacant(current.RoomID, true); err != nil {
				return err
			}
			if s.OccupyRoomOnEdit {
				if err := tx.SetRoomVacant(in.RoomID, false); err != nil {
					return err
				}
			}
		}

		current.RoomID = in.RoomID
		current.CustomerID = in.CustomerID
		current.CheckIn = checkIn
		current.CheckOut = checkOut
		current.PartySize = in.PartySize
		if err := tx.SaveReservation(current); err != nil {
			return err
		}

		result = current
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if changed {
		config.Logger.Info("reservation updated", zap.Uint("reservation_id", id), zap.Uint("room_id", result.RoomID))
	}
	return result, changed, nil
}

// Delete vacates the reservation's room and removes the reservation in one transaction.
func (s *ReservationService) Delete(id uint) error {
	err := s.Repo.Transaction(func(tx repositories.Repository) error {
		reservation, err := tx.FindReservation(id)
		if err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}
		if _, err := tx.FindRoom(reservation.RoomID); err != nil {
			return lookupErr(err, ErrRoomNotFound)
		}

		if err := tx.SetRoomVacant(reservation.RoomID, true); err != nil {
			return err
		}
		return tx.DeleteReservation(id)
	})
	if err != nil {
		return err
	}

	config.Logger.Info("reservation deleted", zap.Uint("reservation_id", id))
	return nil
}

func lookupErr(err, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}
