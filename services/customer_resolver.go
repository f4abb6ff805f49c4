package services

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
)

// CustomerResolver turns a CPF into a customer profile. Two implementations
// exist: a local-store lookup (default) and a remote customer-directory
// lookup selected when CUSTOMER_API_URL is set.
type CustomerResolver interface {
	ResolveByCPF(cpf string) (*domain.Customer, error)
}

// RepositoryCustomerResolver resolves customers from the local store.
type RepositoryCustomerResolver struct {
	Customers *repositories.CustomerRepository
}

func NewRepositoryCustomerResolver(customers *repositories.CustomerRepository) *RepositoryCustomerResolver {
	return &RepositoryCustomerResolver{Customers: customers}
}

func (r *RepositoryCustomerResolver) ResolveByCPF(cpf string) (*domain.Customer, error) {
	customer, err := r.Customers.FindByCPF(cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("Customer not found")
	}
	return customer, nil
}
