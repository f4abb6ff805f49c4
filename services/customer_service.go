package services

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
)

// CustomerService manages locally registered customers.
type CustomerService struct {
	customers *repositories.CustomerRepository
}

func NewCustomerService(customers *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CreateCustomer validates and registers a new customer. The CPF is
// normalized to bare digits and must be unique.
func (s *CustomerService) CreateCustomer(name, email, cpf string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(name, email, cpf)
	if err != nil {
		return nil, err
	}

	exists, err := s.customers.ExistsByCPF(customer.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDomainError("Customer already exists with CPF: " + customer.CPF)
	}

	return s.customers.Save(customer)
}

func (s *CustomerService) FindCustomerByID(id uint) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("Customer not found")
	}
	return customer, nil
}

// FindCustomerByCPF accepts formatted or bare CPF input.
func (s *CustomerService) FindCustomerByCPF(cpf string) (*domain.Customer, error) {
	normalized, err := domain.NormalizeCPF(cpf)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByCPF(normalized)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("Customer not found")
	}
	return customer, nil
}

func (s *CustomerService) FindAllCustomers() ([]*domain.Customer, error) {
	return s.customers.FindAll()
}
