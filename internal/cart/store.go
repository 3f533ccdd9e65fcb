package cart

import (
	"sync"

	"fashion-store/internal/domain"
)

// Observer is invoked synchronously after every successful cart mutation.
// Observers must not call back into the store from the callback; the store's
// lock is not held during notification, but re-entrant mutation from an
// observer would reorder notifications.
type Observer func()

// Store is the single source of truth for one shopping session's in-progress
// order. It enforces at most one line item per (product ID, size, color) key
// and serializes all mutations behind a mutex so that concurrent AddItem
// calls for the same key cannot create duplicate line items.
//
// Line items keep insertion order, which is also display order.
type Store struct {
	mu        sync.RWMutex
	items     []domain.LineItem
	observers []Observer
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers an observer notified after each mutation. There is no
// unsubscribe: observers live as long as the session that owns the store.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// indexOf returns the position of the line item matching the key, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(productID, size, color string) int {
	for i, item := range s.items {
		if item.Product.ID == productID && item.Size == size && item.Color == color {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the given product variant. If a line item with the
// same (product ID, size, color) key already exists its quantity is
// incremented, otherwise a new line item with quantity 1 is appended.
//
// The store does not check that size and color belong to the product's
// declared variant sets; that guard belongs to the caller.
func (s *Store) AddItem(product domain.Product, size, color string) {
	s.mu.Lock()
	if i := s.indexOf(product.ID, size, color); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.LineItem{
			Product:  product,
			Quantity: 1,
			Size:     size,
			Color:    color,
		})
	}
	s.mu.Unlock()

	s.notify()
}

// RemoveItem deletes the line item matching the key. Removing an absent key
// is a no-op and does not notify observers.
func (s *Store) RemoveItem(productID, size, color string) {
	s.mu.Lock()
	i := s.indexOf(productID, size, color)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity sets the matching line item's quantity to exactly quantity.
// A quantity of zero or less behaves as RemoveItem. Updating an absent key is
// a no-op.
func (s *Store) UpdateQuantity(productID, size, color string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID, size, color)
		return
	}

	s.mu.Lock()
	i := s.indexOf(productID, size, color)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = quantity
	s.mu.Unlock()

	s.notify()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notify()
}

// Items returns a snapshot copy of the current line items in display order.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalPrice returns the sum of price x quantity over all line items,
// recomputed on every call. Pre-discount prices are ignored.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems returns the sum of quantities over all line items, not the
// number of distinct line items.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Len returns the number of distinct line items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
