package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lanchonete-app/backend/services"
	"github.com/lanchonete-app/backend/utils"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

type productRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

func (req productRequest) toInput() services.ProductInput {
	return services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
}

// CreateProduct
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	product, err := pc.Service.CreateProduct(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// GetProducts lists every product, optionally filtered by name or category.
func (pc *ProductController) GetProducts(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		products, err := pc.Service.FindProductsByName(name)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of products", products)
		return
	}

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
		products, err := pc.Service.FindProductsByCategoryID(uint(categoryID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of products", products)
		return
	}

	products, err := pc.Service.FindAllProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Service.FindProductByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// UpdateProduct
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	product, err := pc.Service.UpdateProduct(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// ActivateProduct
func (pc *ProductController) ActivateProduct(c *gin.Context) {
	pc.setActive(c, true, "Product activated")
}

// DeactivateProduct
func (pc *ProductController) DeactivateProduct(c *gin.Context) {
	pc.setActive(c, false, "Product deactivated")
}

func (pc *ProductController) setActive(c *gin.Context, active bool, message string) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Service.SetProductActive(id, active)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, message, product)
}

// DeleteProduct
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.Service.DeleteProduct(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", nil)
}
