package mappers

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/models"
)

func ProductToRow(product *domain.Product) *models.Product {
	if product == nil {
		return nil
	}

	row := &models.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Active:      product.Active,
	}
	if product.Category != nil {
		row.CategoryID = product.Category.ID
		row.Category = CategoryToRow(product.Category)
	}
	return row
}

func ProductToDomain(row *models.Product) *domain.Product {
	if row == nil {
		return nil
	}

	return &domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Category:    CategoryToDomain(row.Category),
		Active:      row.Active,
	}
}

func CategoryToRow(category *domain.Category) *models.Category {
	if category == nil {
		return nil
	}
	return &models.Category{ID: category.ID, Name: category.Name}
}

func CategoryToDomain(row *models.Category) *domain.Category {
	if row == nil {
		return nil
	}
	return &domain.Category{ID: row.ID, Name: row.Name}
}
