// Package analytics records storefront interaction events in a bounded
// in-memory buffer. Events are never shipped anywhere; the account dashboard
// reads them back through the API.
package analytics

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event names follow the GA4 e-commerce vocabulary the storefront emits.
const (
	EventPageView       = "page_view"
	EventViewItem       = "view_item"
	EventAddToCart      = "add_to_cart"
	EventRemoveFromCart = "remove_from_cart"
	EventBeginCheckout  = "begin_checkout"
	EventPurchase       = "purchase"
)

// Event is a single recorded interaction.
type Event struct {
	Name      string            `json:"name"`
	Params    map[string]string `json:"params,omitempty"`
	Value     float64           `json:"value,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Recorder keeps the most recent events up to a fixed capacity, discarding
// the oldest first.
type Recorder struct {
	mu       sync.Mutex
	events   []Event
	capacity int
	logger   *zap.Logger
}

// NewRecorder creates a recorder holding at most capacity events.
func NewRecorder(capacity int, logger *zap.Logger) *Recorder {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Recorder{capacity: capacity, logger: logger}
}

// Record appends an event, stamping it with the current time.
func (r *Recorder) Record(name string, value float64, params map[string]string) {
	event := Event{
		Name:      name,
		Params:    params,
		Value:     value,
		Timestamp: time.Now(),
	}

	r.mu.Lock()
	r.events = append(r.events, event)
	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
	r.mu.Unlock()

	r.logger.Debug("Analytics event",
		zap.String("event", name),
		zap.Float64("value", value),
		zap.Any("params", params),
	)
}

// Events returns a snapshot of recorded events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns the number of buffered events.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
