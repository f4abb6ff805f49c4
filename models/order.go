package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusRow and StatusPaymentRow are the persisted forms of the two
// status axes. They are remapped to and from the domain enums by the mappers
// package; the string values are part of the storage schema.
type OrderStatusRow string

const (
	OrderRowReceived      OrderStatusRow = "RECEIVED"
	OrderRowInPreparation OrderStatusRow = "IN_PREPARATION"
	OrderRowReady         OrderStatusRow = "READY"
	OrderRowFinished      OrderStatusRow = "FINISHED"
)

type StatusPaymentRow string

const (
	PaymentRowAguardandoPagamento StatusPaymentRow = "AGUARDANDO_PAGAMENTO"
	PaymentRowAprovado            StatusPaymentRow = "APROVADO"
	PaymentRowRejeitado           StatusPaymentRow = "REJEITADO"
)

type Order struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	CustomerCPF   *string          `gorm:"type:varchar(11);index;column:customer_cpf" json:"customer_cpf,omitempty"`
	Items         []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        OrderStatusRow   `gorm:"type:varchar(20);not null" json:"status"`
	StatusPayment StatusPaymentRow `gorm:"type:varchar(30);not null;column:status_payment" json:"status_payment"`
	PaymentID     *int64           `gorm:"index;column:id_payment" json:"id_payment,omitempty"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`
}
