package domain

// Category groups products on the menu.
type Category struct {
	ID   uint
	Name string
}
