package services

import (
	"github.com/shopspring/decimal"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/repositories"
)

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uint
}

// ProductService manages the product catalog.
type ProductService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	orders     *repositories.OrderRepository
}

func NewProductService(products *repositories.ProductRepository, categories *repositories.CategoryRepository,
	orders *repositories.OrderRepository) *ProductService {
	return &ProductService{products: products, categories: categories, orders: orders}
}

func (s *ProductService) validate(input ProductInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, domain.NewDomainError("Product name cannot be empty")
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewDomainError("Price must be greater than zero")
	}

	category, err := s.categories.FindByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("Category not found")
	}
	return category, nil
}

// CreateProduct creates an active product in an existing category.
func (s *ProductService) CreateProduct(input ProductInput) (*domain.Product, error) {
	category, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	return s.products.Save(&domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Active:      true,
	})
}

func (s *ProductService) FindProductByID(id uint) (*domain.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("Product not found")
	}
	return product, nil
}

func (s *ProductService) FindProductsByName(name string) ([]*domain.Product, error) {
	return s.products.FindByName(name)
}

func (s *ProductService) FindProductsByCategoryID(categoryID uint) ([]*domain.Product, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("Category not found")
	}
	return s.products.FindByCategoryID(categoryID)
}

func (s *ProductService) FindAllProducts() ([]*domain.Product, error) {
	return s.products.FindAll()
}

// UpdateProduct replaces the editable fields of a product.
func (s *ProductService) UpdateProduct(id uint, input ProductInput) (*domain.Product, error) {
	product, err := s.FindProductByID(id)
	if err != nil {
		return nil, err
	}

	category, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = category
	return s.products.Save(product)
}

// SetProductActive flips the availability flag. Inactive products stay
// visible in the catalog but cannot be ordered.
func (s *ProductService) SetProductActive(id uint, active bool) (*domain.Product, error) {
	product, err := s.FindProductByID(id)
	if err != nil {
		return nil, err
	}

	product.Active = active
	return s.products.Save(product)
}

// DeleteProduct removes a product. Products referenced by any order keep
// their rows so order history stays intact.
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.FindProductByID(id); err != nil {
		return err
	}

	referenced, err := s.orders.ExistsByProductID(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.NewConflictError("Product is referenced by orders and cannot be deleted")
	}

	return s.products.DeleteByID(id)
}
