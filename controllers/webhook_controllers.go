package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanchonete-app/backend/services"
	"github.com/lanchonete-app/backend/utils"
)

type WebhookController struct {
	Service *services.PaymentNotificationService
}

func NewWebhookController(service *services.PaymentNotificationService) *WebhookController {
	return &WebhookController{Service: service}
}

// WebhookRequest mirrors the gateway notification envelope; only the payment
// id is consumed.
type WebhookRequest struct {
	Data struct {
		ID *int64 `json:"id" binding:"required"`
	} `json:"data" binding:"required"`
}

// HandlePaymentNotification always answers 200 once the payload parses, even
// when the payment id matches no order. The gateway retries on anything else.
func (wc *WebhookController) HandlePaymentNotification(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid webhook payload"))
		return
	}

	wc.Service.HandlePaymentNotification(*req.Data.ID)

	utils.RespondJSON(c, http.StatusOK, "Notification received", nil)
}
