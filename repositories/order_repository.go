package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/mappers"
	"github.com/lanchonete-app/backend/models"
)

// OrderRepository persists order aggregates. Lookups that find nothing return
// (nil, nil); translating that into a Not-Found error is the service's job.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Save inserts the aggregate on first save (items included) and updates the
// order row alone afterwards. Items are never independently updated, so the
// update path leaves them untouched. Concurrent saves of the same order are
// last-write-wins; there is no row locking or version check.
func (r *OrderRepository) Save(order *domain.Order) (*domain.Order, error) {
	row, err := mappers.OrderToRow(order)
	if err != nil {
		return nil, err
	}

	// Products are referenced, not owned; never write them through the
	// order aggregate.
	for i := range row.Items {
		row.Items[i].Product = nil
	}

	if row.ID == 0 {
		if err := r.DB.Create(row).Error; err != nil {
			return nil, err
		}
	} else {
		if err := r.DB.Omit("Items").Save(row).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(row.ID)
}

func (r *OrderRepository) FindByID(id uint) (*domain.Order, error) {
	var row models.Order
	err := r.DB.Preload("Items.Product.Category").First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.OrderToDomain(&row)
}

// FindByPaymentID looks an order up by the gateway-assigned payment id, the
// secondary key used by webhook notifications.
func (r *OrderRepository) FindByPaymentID(paymentID int64) (*domain.Order, error) {
	var row models.Order
	err := r.DB.Preload("Items.Product.Category").
		Where("id_payment = ?", paymentID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.OrderToDomain(&row)
}

// FindByOptionalStatus returns orders matching status, or every order when
// status is nil. No ordering beyond what the store provides.
func (r *OrderRepository) FindByOptionalStatus(status *domain.OrderStatus) ([]*domain.Order, error) {
	query := r.DB.Preload("Items.Product.Category")
	if status != nil {
		row, err := mappers.OrderStatusToRow(*status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", row)
	}

	var rows []models.Order
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(rows))
	for i := range rows {
		order, err := mappers.OrderToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ExistsByProductID reports whether any order item references the product.
func (r *OrderRepository) ExistsByProductID(productID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
