package domain

// LineItem is a cart entry for a specific product variant. The cart keeps at
// most one line item per (product ID, size, color) key.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// Subtotal returns the line item's contribution to the cart total, always
// using the product's current price rather than any pre-discount price.
func (li LineItem) Subtotal() float64 {
	return li.Product.Price * float64(li.Quantity)
}

// Customer holds the shipping details collected by the checkout form.
type Customer struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}
