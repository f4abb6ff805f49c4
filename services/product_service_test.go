package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lanchonete-app/backend/domain"
)

func TestCreateProduct(t *testing.T) {
	f := newOrderServiceFixture(t)
	categoryService := NewCategoryService(f.categories, f.products)
	productService := NewProductService(f.products, f.categories, f.orders)

	category, err := categoryService.CreateCategory("Lanche")
	assert.NoError(t, err)

	product, err := productService.CreateProduct(ProductInput{
		Name:        "Burger",
		Description: "Classic",
		Price:       decimal.RequireFromString("10.00"),
		CategoryID:  category.ID,
	})
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, product.Active)
	if assert.NotNil(t, product.Category) {
		assert.Equal(t, "Lanche", product.Category.Name)
	}
}

func TestCreateProductValidation(t *testing.T) {
	f := newOrderServiceFixture(t)
	categoryService := NewCategoryService(f.categories, f.products)
	productService := NewProductService(f.products, f.categories, f.orders)

	category, err := categoryService.CreateCategory("Lanche")
	assert.NoError(t, err)

	_, err = productService.CreateProduct(ProductInput{
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	})
	assert.True(t, domain.IsDomainError(err), "empty name")

	_, err = productService.CreateProduct(ProductInput{
		Name:       "Burger",
		Price:      decimal.Zero,
		CategoryID: category.ID,
	})
	assert.True(t, domain.IsDomainError(err), "zero price")

	_, err = productService.CreateProduct(ProductInput{
		Name:       "Burger",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: 404,
	})
	assert.True(t, domain.IsNotFound(err), "missing category")
}

func TestSetProductActive(t *testing.T) {
	f := newOrderServiceFixture(t)
	productService := NewProductService(f.products, f.categories, f.orders)
	burger := f.seedProduct(t, "Burger", "10.00", true)

	deactivated, err := productService.SetProductActive(burger.ID, false)
	assert.NoError(t, err)
	assert.False(t, deactivated.Active)

	_, err = f.service.CreateOrder("", []OrderItemRequest{{ProductID: burger.ID, Quantity: 1}})
	assert.True(t, domain.IsDomainError(err), "deactivated products cannot be ordered")

	activated, err := productService.SetProductActive(burger.ID, true)
	assert.NoError(t, err)
	assert.True(t, activated.Active)
}

func TestDeleteProduct(t *testing.T) {
	f := newOrderServiceFixture(t)
	productService := NewProductService(f.products, f.categories, f.orders)
	burger := f.seedProduct(t, "Burger", "10.00", true)

	assert.NoError(t, productService.DeleteProduct(burger.ID))

	_, err := productService.FindProductByID(burger.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteProductReferencedByOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	productService := NewProductService(f.products, f.categories, f.orders)
	burger := f.seedProduct(t, "Burger", "10.00", true)

	_, err := f.service.CreateOrder("", []OrderItemRequest{{ProductID: burger.ID, Quantity: 1}})
	assert.NoError(t, err)

	err = productService.DeleteProduct(burger.ID)
	assert.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}
