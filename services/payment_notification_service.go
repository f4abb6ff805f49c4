package services

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/utils"
)

// PaymentNotificationService consumes inbound payment notifications from the
// gateway. It is the single place in the system where errors are swallowed:
// the gateway must always receive a success so it does not retry-storm, at
// the cost of silently dropping notifications for unknown payment ids.
type PaymentNotificationService struct {
	orders *OrderService
}

func NewPaymentNotificationService(orders *OrderService) *PaymentNotificationService {
	return &PaymentNotificationService{orders: orders}
}

// HandlePaymentNotification marks the matching order as approved. Calling it
// twice with the same id is a no-op in effect; setting an approved order to
// approved changes nothing.
func (s *PaymentNotificationService) HandlePaymentNotification(paymentID int64) {
	if _, err := s.orders.UpdateOrderStatusPayment(paymentID, domain.StatusPaymentAprovado); err != nil {
		utils.ErrorLogger.Printf("Payment notification dropped: gateway payment id %d: %v", paymentID, err)
	}
}
