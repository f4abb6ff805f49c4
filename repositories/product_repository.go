package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/mappers"
	"github.com/lanchonete-app/backend/models"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Save(product *domain.Product) (*domain.Product, error) {
	row := mappers.ProductToRow(product)
	// The category row belongs to the category repository.
	row.Category = nil
	if err := r.DB.Save(row).Error; err != nil {
		return nil, err
	}
	return r.FindByID(row.ID)
}

func (r *ProductRepository) FindByID(id uint) (*domain.Product, error) {
	var row models.Product
	err := r.DB.Preload("Category").First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ProductToDomain(&row), nil
}

func (r *ProductRepository) FindByName(name string) ([]*domain.Product, error) {
	var rows []models.Product
	err := r.DB.Preload("Category").Where("name LIKE ?", "%"+name+"%").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return productsToDomain(rows), nil
}

func (r *ProductRepository) FindByCategoryID(categoryID uint) ([]*domain.Product, error) {
	var rows []models.Product
	err := r.DB.Preload("Category").Where("category_id = ?", categoryID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return productsToDomain(rows), nil
}

func (r *ProductRepository) FindAll() ([]*domain.Product, error) {
	var rows []models.Product
	if err := r.DB.Preload("Category").Find(&rows).Error; err != nil {
		return nil, err
	}
	return productsToDomain(rows), nil
}

func (r *ProductRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.Product{}, id).Error
}

func productsToDomain(rows []models.Product) []*domain.Product {
	products := make([]*domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, mappers.ProductToDomain(&rows[i]))
	}
	return products
}
