package domain

import "github.com/shopspring/decimal"

// Product is a menu item. Orders only consume an immutable snapshot of its
// identity and price at order-creation time.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Category    *Category
	Active      bool
}
