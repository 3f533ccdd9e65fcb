package domain

// Product represents a single catalogue entry. Products are immutable after
// the catalogue is loaded; a price or stock change requires replacing the
// record, and no such mechanism exists at runtime.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       bool     `json:"in_stock"`
	Featured      bool     `json:"featured,omitempty"`
}

// Discounted reports whether the product carries a pre-discount price higher
// than its current price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price
}

// HasSize reports whether size is one of the product's declared sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's declared colors.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
