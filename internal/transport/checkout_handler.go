package transport

import (
	"errors"
	"net/http"
	"strconv"

	"fashion-store/internal/analytics"
	"fashion-store/internal/domain"
	"fashion-store/internal/middleware"
	"fashion-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutHandler turns the session cart into an order confirmation.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	recorder *analytics.Recorder
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *service.CheckoutService, recorder *analytics.Recorder, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, recorder: recorder, logger: logger}
}

// RegisterRoutes registers the checkout route behind the session middleware.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Post("/api/checkout", h.PlaceOrder)
	})
}

// PlaceOrder validates the customer form, snapshots the cart and clears it.
// Checking out an empty cart is rejected; nothing is persisted either way.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetCartStore(r.Context())
	if !ok {
		h.logger.Error("Cart store missing from request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session not initialized")
		return
	}

	var customer domain.Customer
	if err := middleware.DecodeAndValidate(r, &customer); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.recorder.Record(analytics.EventBeginCheckout, store.TotalPrice(), map[string]string{
		"items": strconv.Itoa(store.TotalItems()),
	})

	confirmation, err := h.checkout.PlaceOrder(r.Context(), store, customer)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusConflict, "cart is empty")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, confirmation)
}
