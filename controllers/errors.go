package controllers

import (
	"errors"
	"net/http"

	"hotel-reservas/config"
	"hotel-reservas/repositories"
	"hotel-reservas/services"
	"hotel-reservas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type apiError struct {
	status  int
	code    string
	message string
}

// businessErrors maps service failures to responses. Order matters only for
// wrapped errors; each sentinel appears once.
var businessErrors = []struct {
	err error
	api apiError
}{
	{services.ErrRoomNotFound, apiError{http.StatusNotFound, "error.roomNotFound", "Quarto não encontrado."}},
	{services.ErrRoomOccupied, apiError{http.StatusConflict, "error.roomOccupied", "O quarto já está ocupado."}},
	{services.ErrDuplicateRoomNumber, apiError{http.StatusBadRequest, "error.duplicateRoomNumber", "O número do quarto já está em uso"}},
	{services.ErrCustomerNotFound, apiError{http.StatusNotFound, "error.customerNotFound", "Cliente não encontrado."}},
	{services.ErrCustomerHasReservations, apiError{http.StatusConflict, "error.customerHasReservations", "Cliente não pode ser deletado, pois está associado a uma reserva"}},
	{services.ErrDuplicatePhone, apiError{http.StatusConflict, "error.duplicateCelular", "O celular informado já está cadastrado"}},
	{services.ErrDuplicateEmail, apiError{http.StatusConflict, "error.duplicateEmail", "O email informado já está cadastrado"}},
	{services.ErrReservationNotFound, apiError{http.StatusNotFound, "error.reservationNotFound", "Reserva não encontrada"}},
	{services.ErrCapacityExceeded, apiError{http.StatusBadRequest, "error.capacityExceeded", "O quarto não comporta a quantidade de pessoas fornecidas."}},
	{services.ErrInvalidDateRange, apiError{http.StatusBadRequest, "error.invalidDateRange", "A data de check-out deve ser posterior à data de check-in"}},
}

func lookupBusinessError(err error) (apiError, bool) {
	for _, be := range businessErrors {
		if errors.Is(err, be.err) {
			return be.api, true
		}
	}
	return apiError{}, false
}

func respondFormError(c *gin.Context, err error) bool {
	fe := IsFormError(err)
	if fe == nil {
		return false
	}
	utils.JSONValidationError(c, http.StatusBadRequest, "Dados inválidos", fe.Fields())
	return true
}

// respondError writes the mapped response for err, or 500 for unknown failures.
func respondError(c *gin.Context, err error) {
	if respondFormError(c, err) {
		return
	}
	if be, ok := lookupBusinessError(err); ok {
		utils.JSONError(c, be.status, be.code, be.message)
		return
	}
	if repositories.IsDuplicate(err) != nil {
		utils.JSONError(c, http.StatusConflict, "error.duplicate", "Registro duplicado")
		return
	}

	config.Logger.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Erro interno do servidor")
}

// respondCreateError answers every failure of a create endpoint with 400.
// Unexpected persistence errors collapse to fallback and are only logged.
func respondCreateError(c *gin.Context, err error, fallback string) {
	if respondFormError(c, err) {
		return
	}
	if be, ok := lookupBusinessError(err); ok {
		utils.JSONError(c, http.StatusBadRequest, be.code, be.message)
		return
	}

	config.Logger.Error("create failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	utils.JSONError(c, http.StatusBadRequest, "error.createFailed", fallback)
}
