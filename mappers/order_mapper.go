// Package mappers converts between the domain model and its persisted
// representation. All functions are nil-in/nil-out; an unmapped enum value is
// reported as an error because it signals a schema mismatch, not bad input.
package mappers

import (
	"fmt"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/models"
)

func OrderToRow(order *domain.Order) (*models.Order, error) {
	if order == nil {
		return nil, nil
	}

	status, err := OrderStatusToRow(order.Status)
	if err != nil {
		return nil, err
	}
	statusPayment, err := StatusPaymentToRow(order.StatusPayment)
	if err != nil {
		return nil, err
	}

	row := &models.Order{
		ID:            order.ID,
		TotalAmount:   order.TotalAmount,
		Status:        status,
		StatusPayment: statusPayment,
		PaymentID:     order.PaymentID,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	if order.CPF != "" {
		cpf := order.CPF
		row.CustomerCPF = &cpf
	}

	if order.Items != nil {
		items := make([]models.OrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, orderItemToRow(item, order.ID))
		}
		row.Items = items
	}

	return row, nil
}

func OrderToDomain(row *models.Order) (*domain.Order, error) {
	if row == nil {
		return nil, nil
	}

	status, err := OrderStatusToDomain(row.Status)
	if err != nil {
		return nil, err
	}
	statusPayment, err := StatusPaymentToDomain(row.StatusPayment)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            row.ID,
		TotalAmount:   row.TotalAmount,
		Status:        status,
		StatusPayment: statusPayment,
		PaymentID:     row.PaymentID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.CustomerCPF != nil {
		order.CPF = *row.CustomerCPF
	}

	if row.Items != nil {
		items := make([]domain.OrderItem, 0, len(row.Items))
		for _, itemRow := range row.Items {
			items = append(items, orderItemToDomain(itemRow))
		}
		order.Items = items
	}

	return order, nil
}

func orderItemToRow(item domain.OrderItem, orderID uint) models.OrderItem {
	return models.OrderItem{
		ID:        item.ID,
		OrderID:   orderID,
		ProductID: item.ProductID,
		Product:   ProductToRow(item.Product),
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		SubTotal:  item.SubTotal,
	}
}

func orderItemToDomain(row models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:        row.ID,
		ProductID: row.ProductID,
		Product:   ProductToDomain(row.Product),
		Quantity:  row.Quantity,
		UnitPrice: row.UnitPrice,
		SubTotal:  row.SubTotal,
	}
}

func OrderStatusToRow(status domain.OrderStatus) (models.OrderStatusRow, error) {
	switch status {
	case domain.OrderStatusReceived:
		return models.OrderRowReceived, nil
	case domain.OrderStatusInPreparation:
		return models.OrderRowInPreparation, nil
	case domain.OrderStatusReady:
		return models.OrderRowReady, nil
	case domain.OrderStatusFinished:
		return models.OrderRowFinished, nil
	default:
		return "", fmt.Errorf("unknown order status: %q", status)
	}
}

func OrderStatusToDomain(status models.OrderStatusRow) (domain.OrderStatus, error) {
	switch status {
	case models.OrderRowReceived:
		return domain.OrderStatusReceived, nil
	case models.OrderRowInPreparation:
		return domain.OrderStatusInPreparation, nil
	case models.OrderRowReady:
		return domain.OrderStatusReady, nil
	case models.OrderRowFinished:
		return domain.OrderStatusFinished, nil
	default:
		return "", fmt.Errorf("unknown stored order status: %q", status)
	}
}

func StatusPaymentToRow(status domain.StatusPayment) (models.StatusPaymentRow, error) {
	switch status {
	case domain.StatusPaymentAguardandoPagamento:
		return models.PaymentRowAguardandoPagamento, nil
	case domain.StatusPaymentAprovado:
		return models.PaymentRowAprovado, nil
	case domain.StatusPaymentRejeitado:
		return models.PaymentRowRejeitado, nil
	default:
		return "", fmt.Errorf("unknown payment status: %q", status)
	}
}

func StatusPaymentToDomain(status models.StatusPaymentRow) (domain.StatusPayment, error) {
	switch status {
	case models.PaymentRowAguardandoPagamento:
		return domain.StatusPaymentAguardandoPagamento, nil
	case models.PaymentRowAprovado:
		return domain.StatusPaymentAprovado, nil
	case models.PaymentRowRejeitado:
		return domain.StatusPaymentRejeitado, nil
	default:
		return "", fmt.Errorf("unknown stored payment status: %q", status)
	}
}
