package domain

import "github.com/shopspring/decimal"

// OrderItem is a line item of an order. UnitPrice and SubTotal are frozen at
// creation time; later price changes to the product do not affect them.
type OrderItem struct {
	ID        uint
	ProductID uint
	Product   *Product
	Quantity  int
	UnitPrice decimal.Decimal
	SubTotal  decimal.Decimal
}

// NewOrderItem snapshots the product's current price and computes the
// subtotal with exact decimal arithmetic.
func NewOrderItem(product *Product, quantity int) OrderItem {
	return OrderItem{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		UnitPrice: product.Price,
		SubTotal:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
