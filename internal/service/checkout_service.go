package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fashion-store/internal/analytics"
	"fashion-store/internal/cart"
	"fashion-store/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// OrderConfirmation is what the shopper gets back after a successful
// checkout. No order record is created or transmitted anywhere; the cart is
// cleared and the confirmation is the only artifact.
type OrderConfirmation struct {
	Reference  string            `json:"reference"`
	Items      []domain.LineItem `json:"items"`
	TotalPrice float64           `json:"total_price"`
	TotalItems int               `json:"total_items"`
	Customer   domain.Customer   `json:"customer"`
	PlacedAt   time.Time         `json:"placed_at"`
}

// CheckoutService turns a cart snapshot plus a validated customer form into
// an order confirmation and clears the cart.
type CheckoutService struct {
	recorder *analytics.Recorder
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(recorder *analytics.Recorder, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{recorder: recorder, logger: logger}
}

// PlaceOrder snapshots the cart, rejects an empty one, clears the cart and
// returns a confirmation. The customer form is validated at the transport
// layer before this is called.
func (s *CheckoutService) PlaceOrder(_ context.Context, store *cart.Store, customer domain.Customer) (*OrderConfirmation, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	confirmation := &OrderConfirmation{
		Reference:  uuid.NewString(),
		Items:      items,
		TotalPrice: store.TotalPrice(),
		TotalItems: store.TotalItems(),
		Customer:   customer,
		PlacedAt:   time.Now(),
	}

	store.Clear()

	s.recorder.Record(analytics.EventPurchase, confirmation.TotalPrice, map[string]string{
		"reference": confirmation.Reference,
		"items":     strconv.Itoa(confirmation.TotalItems),
	})

	s.logger.Info("Order placed",
		zap.String("reference", confirmation.Reference),
		zap.Float64("total_price", confirmation.TotalPrice),
		zap.Int("total_items", confirmation.TotalItems),
	)

	return confirmation, nil
}
