package services

import "github.com/shopspring/decimal"

// PaymentCharge is the narrow parsed form of a gateway charge response. Only
// the fields the order lifecycle consumes are kept.
type PaymentCharge struct {
	ID     int64
	Status string
}

// PaymentGateway creates remote payment charges. The single implementation
// talks to Mercado Pago; tests substitute fakes.
type PaymentGateway interface {
	CreateCharge(amount decimal.Decimal, description, paymentMethodID string, installments int,
		payerEmail, identificationType, identificationNumber string) (*PaymentCharge, error)
}
