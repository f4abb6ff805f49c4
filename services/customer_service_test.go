package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
)

func newCustomerService(t *testing.T) *CustomerService {
	db := setupTestDB(t)
	return NewCustomerService(repositories.NewCustomerRepository(db))
}

func TestCreateCustomer(t *testing.T) {
	service := newCustomerService(t)

	customer, err := service.CreateCustomer("Joao", "Joao@Example.com", "529.982.247-25")
	assert.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "joao@example.com", customer.Email)
	assert.Equal(t, "52998224725", customer.CPF)
}

func TestCreateCustomerDuplicateCPF(t *testing.T) {
	service := newCustomerService(t)

	_, err := service.CreateCustomer("Joao", "joao@example.com", "52998224725")
	assert.NoError(t, err)

	_, err = service.CreateCustomer("Outro Joao", "outro@example.com", "529.982.247-25")
	assert.Error(t, err)
	assert.True(t, domain.IsDomainError(err))
	assert.Contains(t, err.Error(), "Customer already exists with CPF")
}

func TestCreateCustomerInvalidCPF(t *testing.T) {
	service := newCustomerService(t)

	_, err := service.CreateCustomer("Joao", "joao@example.com", "12345678900")
	assert.Error(t, err)
	assert.True(t, domain.IsDomainError(err))
}

func TestFindCustomerByCPFAcceptsFormattedInput(t *testing.T) {
	service := newCustomerService(t)

	_, err := service.CreateCustomer("Joao", "joao@example.com", "52998224725")
	assert.NoError(t, err)

	customer, err := service.FindCustomerByCPF("529.982.247-25")
	assert.NoError(t, err)
	assert.Equal(t, "Joao", customer.Name)
}

func TestFindCustomerByCPFNotFound(t *testing.T) {
	service := newCustomerService(t)

	_, err := service.FindCustomerByCPF("52998224725")
	assert.True(t, domain.IsNotFound(err))
}
