package services

import (
	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
)

// CategoryService manages the product category catalog.
type CategoryService struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
}

func NewCategoryService(categories *repositories.CategoryRepository, products *repositories.ProductRepository) *CategoryService {
	return &CategoryService{categories: categories, products: products}
}

// CreateCategory creates a category with a unique, non-empty name.
func (s *CategoryService) CreateCategory(name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.NewDomainError("Category name cannot be empty")
	}

	exists, err := s.categories.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDomainError("Category already exists: " + name)
	}

	return s.categories.Save(&domain.Category{Name: name})
}

func (s *CategoryService) FindCategoryByID(id uint) (*domain.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("Category not found")
	}
	return category, nil
}

func (s *CategoryService) FindAllCategories() ([]*domain.Category, error) {
	return s.categories.FindAll()
}

// UpdateCategory renames a category, keeping the name unique.
func (s *CategoryService) UpdateCategory(id uint, name string) (*domain.Category, error) {
	category, err := s.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewDomainError("Category name cannot be empty")
	}
	if name != category.Name {
		exists, err := s.categories.ExistsByName(name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDomainError("Category already exists: " + name)
		}
	}

	category.Name = name
	return s.categories.Save(category)
}

// DeleteCategory removes a category. Categories still referenced by products
// cannot be deleted.
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.FindCategoryByID(id); err != nil {
		return err
	}

	linked, err := s.products.FindByCategoryID(id)
	if err != nil {
		return err
	}
	if len(linked) > 0 {
		return domain.NewConflictError("Category has products and cannot be deleted")
	}

	return s.categories.DeleteByID(id)
}
