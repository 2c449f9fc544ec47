package controllers

import (
	"net/http"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// GetCustomers (GET /clientes)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomer (POST /clientes)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	customer, err := parseCustomerForm(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.CustomerSvc.Create(&customer); err != nil {
		respondCreateError(c, err, "Não foi possível salvar novo cliente :/")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Cliente criado com sucesso!", customer.ID)
}

// UpdateCustomer (PUT /clientes/?id=)
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}
	customer, err := parseCustomerForm(c)
	if err != nil {
		respondFormError(c, err)
		return
	}
	customer.ID = id

	if err := ctrl.CustomerSvc.Update(&customer); err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Informações do cliente atualizadas com sucesso", id)
}

// DeleteCustomer (DELETE /clientes?id=)
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if err := ctrl.CustomerSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Cliente removido com sucesso", id)
}
