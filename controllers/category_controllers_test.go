package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndListCategories(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, "POST", "/api/v1/categories", map[string]interface{}{"name": "Lanche"})
	assert.Equal(t, http.StatusCreated, w.Code)
	categoryID := int(decodeData(t, w)["ID"].(float64))

	w = doJSON(t, engine, "GET", "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lanche")

	w = doJSON(t, engine, "GET", fmt.Sprintf("/api/v1/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, "POST", "/api/v1/categories", map[string]interface{}{"name": "Lanche"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/categories", map[string]interface{}{"name": "Lanche"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")
}

func TestDeleteCategoryInUse(t *testing.T) {
	engine, db := setupAPI(t)
	product := seedCatalog(t, db)

	w := doJSON(t, engine, "DELETE", fmt.Sprintf("/api/v1/categories/%d", product.CategoryID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCustomerAndLookupByCPF(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, "POST", "/api/v1/customers", map[string]interface{}{
		"name":  "Joao",
		"email": "joao@example.com",
		"cpf":   "529.982.247-25",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/customers/cpf/52998224725", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Joao")

	w = doJSON(t, engine, "GET", "/api/v1/customers/cpf/15350946056", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
