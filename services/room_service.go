package services

import (
	"errors"
	"fmt"

	"hotel-reservas/config"
	"hotel-reservas/models"
	"hotel-reservas/repositories"

	"go.uber.org/zap"
)

type RoomService struct {
	Repo repositories.Repository
}

func NewRoomService(repo repositories.Repository) *RoomService {
	return &RoomService{Repo: repo}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	return s.Repo.ListRooms(false)
}

func (s *RoomService) GetVacant() ([]models.Room, error) {
	return s.Repo.ListRooms(true)
}

// Create inserts room; room.ID is filled on success.
func (s *RoomService) Create(room *models.Room) error {
	exists, err := s.Repo.RoomNumberExists(room.Number)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateRoomNumber
	}

	if err := s.Repo.CreateRoom(room); err != nil {
		if repositories.IsDuplicate(err) != nil {
			return ErrDuplicateRoomNumber
		}
		return err
	}

	config.Logger.Info("room created", zap.Uint("room_id", room.ID), zap.Int("numero", room.Number))
	return nil
}

// UpdateRates overwrites capacity and nightly rate. An unknown id updates
// nothing and is not reported.
func (s *RoomService) UpdateRates(id uint, maxCapacity int, nightlyRate float64) error {
	n, err := s.Repo.UpdateRoomRates(id, maxCapacity, nightlyRate)
	if err != nil {
		return err
	}
	if n == 0 {
		config.Logger.Warn("room update matched no rows", zap.Uint("room_id", id))
	}
	return nil
}

// Delete removes a vacant room. Occupied rooms must be checked out first.
func (s *RoomService) Delete(id uint) error {
	return s.Repo.Transaction(func(tx repositories.Repository) error {
		room, err := tx.FindRoom(id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if !room.Vacant {
			return ErrRoomOccupied
		}
		if err := tx.DeleteRoom(id); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		return nil
	})
}
