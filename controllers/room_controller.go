package controllers

import (
	"errors"
	"net/http"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /quartos
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRooms(rooms))
}

// ----------------------------------------------------
// GET /quartos_vagos
// ----------------------------------------------------

func (ctrl *RoomController) GetVacantRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetVacant()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRooms(rooms))
}

// ----------------------------------------------------
// POST /quartos
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	room, err := parseRoomCreateForm(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		respondCreateError(c, err, "Não foi possível salvar novo quarto :/")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Quarto criado com sucesso!", room.ID)
}

// ----------------------------------------------------
// PUT /quartos?id=
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}
	form, err := parseRoomEditForm(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.RoomSvc.UpdateRates(id, form.MaxCapacity, form.NightlyRate); err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Informações do quarto atualizadas com sucesso", id)
}

// ----------------------------------------------------
// DELETE /quartos?id=
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomOccupied) {
			utils.JSONError(c, http.StatusConflict, "error.roomOccupied",
				"O quarto está ocupado. Favor fazer o checkout antes de excluir")
			return
		}
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Quarto removido com sucesso", id)
}

func nonNilRooms(rooms []models.Room) []models.Room {
	if rooms == nil {
		return []models.Room{}
	}
	return rooms
}
