package catalog

import (
	"errors"
	"math"
	"sort"
	"strings"

	"fashion-store/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id in catalogue")
)

// boughtTogetherPriceBand bounds the price distance for the
// frequently-bought-together heuristic.
const boughtTogetherPriceBand = 50.0

// Catalog is a static, immutable product collection supplied at startup.
// There is no refresh mechanism; all accessors are linear scans over the
// loaded slice, which is small enough that no index beyond the ID map is
// worth maintaining.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New builds a catalogue from the given products. IDs must be unique.
func New(products []domain.Product) (*Catalog, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, ErrDuplicateID
		}
		byID[p.ID] = i
	}

	// Defensive copy so callers cannot mutate the catalogue afterwards.
	owned := make([]domain.Product, len(products))
	copy(owned, products)

	return &Catalog{products: owned, byID: byID}, nil
}

// Len returns the number of products in the catalogue.
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByID returns the product with the given ID.
func (c *Catalog) FindByID(id string) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// List returns all products, optionally filtered by category. An empty
// category returns the whole catalogue in load order.
func (c *Catalog) List(category string) []domain.Product {
	if category == "" {
		out := make([]domain.Product, len(c.products))
		copy(out, c.products)
		return out
	}

	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name or description contains the query,
// case-insensitively. A blank query returns the whole catalogue.
func (c *Catalog) Search(query string) []domain.Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return c.List("")
	}

	out := []domain.Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products flagged for promotional placement.
func (c *Catalog) Featured() []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Similar returns up to limit products from the same category as the given
// product, ordered by price proximity, excluding the product itself.
func (c *Catalog) Similar(id string, limit int) ([]domain.Product, error) {
	base, err := c.FindByID(id)
	if err != nil {
		return nil, err
	}

	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == base.Category && p.ID != base.ID {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Price-base.Price) < math.Abs(out[j].Price-base.Price)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// BoughtTogether returns up to limit products commonly paired with the given
// product: same category, price within a fixed band, the product excluded.
func (c *Catalog) BoughtTogether(id string, limit int) ([]domain.Product, error) {
	base, err := c.FindByID(id)
	if err != nil {
		return nil, err
	}

	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == base.Category && p.ID != base.ID &&
			math.Abs(p.Price-base.Price) < boughtTogetherPriceBand {
			out = append(out, p)
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
