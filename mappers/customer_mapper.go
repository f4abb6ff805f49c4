package mappers

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/models"
)

func CustomerToRow(customer *domain.Customer) *models.Customer {
	if customer == nil {
		return nil
	}
	return &models.Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		CPF:   customer.CPF,
	}
}

func CustomerToDomain(row *models.Customer) *domain.Customer {
	if row == nil {
		return nil
	}
	return &domain.Customer{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		CPF:   row.CPF,
	}
}
