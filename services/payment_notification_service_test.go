package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanchonete-app/backend/domain"
)

func TestHandlePaymentNotificationApprovesOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	burger := f.seedProduct(t, "Burger", "10.00", true)

	order, err := f.service.CreateOrder("", []OrderItemRequest{{ProductID: burger.ID, Quantity: 1}})
	assert.NoError(t, err)

	notifications := NewPaymentNotificationService(f.service)
	notifications.HandlePaymentNotification(*order.PaymentID)

	updated, err := f.service.FindOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentAprovado, updated.StatusPayment)
	assert.Equal(t, domain.OrderStatusInPreparation, updated.Status)
}

func TestHandlePaymentNotificationIdempotent(t *testing.T) {
	f := newOrderServiceFixture(t)
	burger := f.seedProduct(t, "Burger", "10.00", true)

	order, err := f.service.CreateOrder("", []OrderItemRequest{{ProductID: burger.ID, Quantity: 1}})
	assert.NoError(t, err)

	notifications := NewPaymentNotificationService(f.service)
	notifications.HandlePaymentNotification(*order.PaymentID)
	notifications.HandlePaymentNotification(*order.PaymentID)

	updated, err := f.service.FindOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentAprovado, updated.StatusPayment)
}

func TestHandlePaymentNotificationUnknownIDIsSwallowed(t *testing.T) {
	f := newOrderServiceFixture(t)

	notifications := NewPaymentNotificationService(f.service)
	assert.NotPanics(t, func() {
		notifications.HandlePaymentNotification(999999)
	})
}
