// controllers/reservation_controller.go
package controllers

import (
	"net/http"
	"time"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type reservationCustomerView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"nome"`
	LastName  string `json:"sobrenome"`
}

// reservationView is a reservation joined with its room number and customer name.
type reservationView struct {
	ID         uint                    `json:"id"`
	RoomID     uint                    `json:"quarto_id"`
	RoomNumber int                     `json:"numero_quarto"`
	CheckIn    string                  `json:"data_checkin"`
	CheckOut   string                  `json:"data_checkout"`
	PartySize  int                     `json:"numero_pessoas"`
	Customer   reservationCustomerView `json:"cliente"`
	Nights     int                     `json:"diarias"`
	Total      decimal.Decimal         `json:"valor_total"`
}

func presentReservation(r models.Reservation) reservationView {
	return reservationView{
		ID:         r.ID,
		RoomID:     r.RoomID,
		RoomNumber: r.Room.Number,
		CheckIn:    models.FormatDate(r.CheckIn),
		CheckOut:   models.FormatDate(r.CheckOut),
		PartySize:  r.PartySize,
		Customer: reservationCustomerView{
			ID:        r.CustomerID,
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
		},
		Nights: r.Nights(),
		Total:  r.TotalPrice(),
	}
}

type ReservationController struct {
	ReservationSvc *services.ReservationService

	// Now is the clock used for the "check-in not in the past" rule.
	Now func() time.Time
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc, Now: time.Now}
}

// GetReservations (GET /reservas)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]reservationView, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, presentReservation(r))
	}
	c.JSON(http.StatusOK, out)
}

// CreateReservation (POST /reservas). Every rejection is a 400 on this endpoint.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	in, err := parseReservationForm(c, ctrl.Now())
	if err != nil {
		respondFormError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Create(in)
	if err != nil {
		respondCreateError(c, err, "Não foi possível salvar nova reserva :/")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Reserva criada com sucesso!", reservation.ID)
}

// UpdateReservation (PUT /reservas?id=)
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}
	in, err := parseReservationForm(c, ctrl.Now())
	if err != nil {
		respondFormError(c, err)
		return
	}

	_, changed, err := ctrl.ReservationSvc.Edit(id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "As informações enviadas são iguais às informações originais, não houve alteração",
			"id":      id,
			"changed": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Informações da reserva atualizadas com sucesso",
		"id":      id,
		"changed": true,
	})
}

// DeleteReservation (DELETE /reservas?id=)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.ReservationSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Reserva removida com sucesso", id)
}
