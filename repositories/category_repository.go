package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/mappers"
	"github.com/lanchonete-app/backend/models"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Save(category *domain.Category) (*domain.Category, error) {
	row := mappers.CategoryToRow(category)
	if err := r.DB.Save(row).Error; err != nil {
		return nil, err
	}
	return mappers.CategoryToDomain(row), nil
}

func (r *CategoryRepository) FindByID(id uint) (*domain.Category, error) {
	var row models.Category
	err := r.DB.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.CategoryToDomain(&row), nil
}

func (r *CategoryRepository) FindAll() ([]*domain.Category, error) {
	var rows []models.Category
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, mappers.CategoryToDomain(&rows[i]))
	}
	return categories, nil
}

func (r *CategoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.Category{}, id).Error
}
