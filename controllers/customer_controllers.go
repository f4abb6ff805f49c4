package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanchonete-app/backend/services"
	"github.com/lanchonete-app/backend/utils"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{Service: service}
}

type customerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
}

// CreateCustomer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	customer, err := cc.Service.CreateCustomer(req.Name, req.Email, req.CPF)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetAllCustomers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Service.FindAllCustomers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByCPF
func (cc *CustomerController) GetCustomerByCPF(c *gin.Context) {
	cpf := c.Param("cpf")

	customer, err := cc.Service.FindCustomerByCPF(cpf)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// GetCustomerByID
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Service.FindCustomerByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}
