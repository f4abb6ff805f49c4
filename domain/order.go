package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the order lifecycle. Status and
// StatusPayment are independent axes; all mutation goes through the methods
// below so the aggregate stays the sole unit of persistence.
type Order struct {
	ID            uint
	CPF           string
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	StatusPayment StatusPayment
	PaymentID     *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder builds an order in RECEIVED / AGUARDANDO_PAGAMENTO state. The
// total is the exact sum of item subtotals and is not recomputed afterwards.
func NewOrder(cpf string, items []OrderItem) *Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.SubTotal)
	}

	now := time.Now()
	return &Order{
		CPF:           cpf,
		Items:         items,
		TotalAmount:   total,
		Status:        OrderStatusReceived,
		StatusPayment: StatusPaymentAguardandoPagamento,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AttachPayment records the gateway-assigned payment id for the charge
// created for this order.
func (o *Order) AttachPayment(paymentID int64) {
	o.PaymentID = &paymentID
}

// AdvanceStatus moves the fulfillment axis and stamps UpdatedAt. Business
// guards (such as requiring an approved payment) live in the order service,
// not here.
func (o *Order) AdvanceStatus(status OrderStatus) {
	o.Status = status
	o.UpdatedAt = time.Now()
}

// ApplyPayment sets the payment status and, as a side effect of payment
// confirmation, forces the fulfillment status to IN_PREPARATION. This is the
// single call site where the two axes are coupled.
func (o *Order) ApplyPayment(status StatusPayment) {
	o.StatusPayment = status
	o.Status = OrderStatusInPreparation
	o.UpdatedAt = time.Now()
}

// IsPaid reports whether the payment axis reached APROVADO.
func (o *Order) IsPaid() bool {
	return o.StatusPayment == StatusPaymentAprovado
}
