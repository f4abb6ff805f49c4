package services

import (
	"os"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
	"github.com/lanchonete-app/backend/utils"
)

// Charge parameters fixed by the payment integration.
const (
	chargeDescription     = "Pagamento para o pedido"
	chargePaymentMethodID = "pix"
	chargeInstallments    = 1
	chargeIDType          = "CPF"
)

// PayerDefaults are the placeholder payer values used when an order has no
// resolved customer or the customer record lacks the field.
type PayerDefaults struct {
	Email string
	CPF   string
}

// PayerDefaultsFromEnv reads the deployment placeholders, falling back to a
// generic payer email.
func PayerDefaultsFromEnv() PayerDefaults {
	defaults := PayerDefaults{
		Email: os.Getenv("PAYMENT_DEFAULT_PAYER_EMAIL"),
		CPF:   os.Getenv("PAYMENT_DEFAULT_PAYER_CPF"),
	}
	if defaults.Email == "" {
		defaults.Email = "pagamentos@lanchonete.app"
	}
	return defaults
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderService is the order lifecycle core: it builds orders from item
// requests, orchestrates the payment charge and owns every status
// transition.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	resolver CustomerResolver
	gateway  PaymentGateway
	payer    PayerDefaults
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository,
	resolver CustomerResolver, gateway PaymentGateway, payer PayerDefaults) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		resolver: resolver,
		gateway:  gateway,
		payer:    payer,
	}
}

// CreateOrder validates the requested items, resolves customer and products,
// creates the remote charge and persists the order in RECEIVED /
// AGUARDANDO_PAGAMENTO state. An empty cpf means an anonymous order.
func (s *OrderService) CreateOrder(cpf string, items []OrderItemRequest) (*domain.Order, error) {
	customer, err := s.resolveCustomer(cpf)
	if err != nil {
		return nil, err
	}

	orderItems, err := s.buildOrderItems(items)
	if err != nil {
		return nil, err
	}

	orderCPF := cpf
	if customer != nil {
		orderCPF = customer.CPF
	}
	order := domain.NewOrder(orderCPF, orderItems)

	charge, err := s.createCharge(order, customer)
	if err != nil {
		return nil, err
	}
	order.AttachPayment(charge.ID)

	saved, err := s.orders.Save(order)
	if err != nil {
		// The charge already exists at the gateway but the order was never
		// stored. There is no compensating transaction; operators reconcile
		// from this log line.
		utils.ErrorLogger.Printf("ORDER PERSISTENCE FAILED AFTER CHARGE: gateway payment id %d has no stored order: %v",
			charge.ID, err)
		return nil, err
	}
	return saved, nil
}

func (s *OrderService) resolveCustomer(cpf string) (*domain.Customer, error) {
	if cpf == "" {
		return nil, nil
	}
	return s.resolver.ResolveByCPF(cpf)
}

func (s *OrderService) buildOrderItems(items []OrderItemRequest) ([]domain.OrderItem, error) {
	orderItems := make([]domain.OrderItem, 0, len(items))

	for _, request := range items {
		if request.Quantity <= 0 {
			return nil, domain.NewDomainError("Quantity must be greater than zero")
		}

		product, err := s.products.FindByID(request.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NewNotFoundError("Product not found")
		}
		if !product.Active {
			return nil, domain.NewDomainError("Product is not active: " + product.Name)
		}

		orderItems = append(orderItems, domain.NewOrderItem(product, request.Quantity))
	}

	return orderItems, nil
}

func (s *OrderService) createCharge(order *domain.Order, customer *domain.Customer) (*PaymentCharge, error) {
	payerEmail := s.payer.Email
	payerCPF := s.payer.CPF
	if customer != nil {
		if customer.Email != "" {
			payerEmail = customer.Email
		}
		if customer.CPF != "" {
			payerCPF = customer.CPF
		}
	} else if order.CPF != "" {
		payerCPF = order.CPF
	}

	return s.gateway.CreateCharge(order.TotalAmount, chargeDescription, chargePaymentMethodID,
		chargeInstallments, payerEmail, chargeIDType, payerCPF)
}

// FindOrderByID returns the order or a Not-Found error.
func (s *OrderService) FindOrderByID(id uint) (*domain.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("Record not found")
	}
	return order, nil
}

// FindByOptionalStatus lists orders filtered by status, or every order when
// status is nil.
func (s *OrderService) FindByOptionalStatus(status *domain.OrderStatus) ([]*domain.Order, error) {
	return s.orders.FindByOptionalStatus(status)
}

// UpdateOrderStatus is the guarded fulfillment transition: it refuses to move
// an order whose payment was not approved.
func (s *OrderService) UpdateOrderStatus(id uint, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.FindOrderByID(id)
	if err != nil {
		return nil, err
	}

	if !order.IsPaid() {
		return nil, domain.NewDomainError("The order is not paid")
	}

	order.AdvanceStatus(status)
	return s.orders.Save(order)
}

// StartPreparation is the kitchen-acknowledgement path: it advances the order
// to IN_PREPARATION without checking the payment axis. The asymmetry with
// UpdateOrderStatus is intentional, inherited behavior.
func (s *OrderService) StartPreparation(id uint) (*domain.Order, error) {
	order, err := s.FindOrderByID(id)
	if err != nil {
		return nil, err
	}

	order.AdvanceStatus(domain.OrderStatusInPreparation)
	return s.orders.Save(order)
}

// UpdateOrderStatusPayment applies a payment outcome to the order carrying
// the given gateway payment id. Payment confirmation also forces the
// fulfillment status to IN_PREPARATION.
func (s *OrderService) UpdateOrderStatusPayment(paymentID int64, status domain.StatusPayment) (*domain.Order, error) {
	order, err := s.orders.FindByPaymentID(paymentID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("Record not found")
	}

	order.ApplyPayment(status)
	return s.orders.Save(order)
}
