package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/services"
	"github.com/lanchonete-app/backend/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

type createOrderRequest struct {
	CPF   string                      `json:"cpf"`
	Items []services.OrderItemRequest `json:"items" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places a new order. The cpf field is optional; omitting it
// creates an anonymous order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must have at least one item"))
		return
	}

	order, err := oc.Service.CreateOrder(req.CPF, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrders lists orders, optionally filtered by ?status=.
func (oc *OrderController) GetOrders(c *gin.Context) {
	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParseOrderStatus(raw)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		status = &parsed
	}

	orders, err := oc.Service.FindByOptionalStatus(status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.FindOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus moves a paid order along the fulfillment flow.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	order, err := oc.Service.UpdateOrderStatus(id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// StartPreparation acknowledges an order into the kitchen without a request
// body.
func (oc *OrderController) StartPreparation(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.StartPreparation(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
