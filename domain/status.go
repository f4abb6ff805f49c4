package domain

import "fmt"

// OrderStatus is the kitchen-facing progress axis of an order.
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "RECEIVED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusReady         OrderStatus = "READY"
	OrderStatusFinished      OrderStatus = "FINISHED"
)

// ParseOrderStatus converts a client-supplied string into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	switch OrderStatus(value) {
	case OrderStatusReceived, OrderStatusInPreparation, OrderStatusReady, OrderStatusFinished:
		return OrderStatus(value), nil
	default:
		return "", NewDomainError(fmt.Sprintf("Invalid order status: %s", value))
	}
}

// StatusPayment is the money-facing axis of an order. Terminal once approved
// or rejected.
type StatusPayment string

const (
	StatusPaymentAguardandoPagamento StatusPayment = "AGUARDANDO_PAGAMENTO"
	StatusPaymentAprovado            StatusPayment = "APROVADO"
	StatusPaymentRejeitado           StatusPayment = "REJEITADO"
)

// StatusPaymentFromGateway maps a Mercado Pago transaction status onto the
// payment axis. An unrecognized status is a contract break with the gateway.
func StatusPaymentFromGateway(gatewayStatus string) (StatusPayment, error) {
	switch gatewayStatus {
	case "approved":
		return StatusPaymentAprovado, nil
	case "pending", "in_process":
		return StatusPaymentAguardandoPagamento, nil
	case "rejected", "cancelled":
		return StatusPaymentRejeitado, nil
	default:
		return "", &GatewayContractError{Message: fmt.Sprintf("unknown gateway payment status: %s", gatewayStatus)}
	}
}
