package transport

import (
	"context"
	"net/http"

	"fashion-store/internal/analytics"
	"fashion-store/internal/catalog"
	"fashion-store/internal/cart"
	"fashion-store/internal/domain"
	"fashion-store/internal/i18n"
	"fashion-store/internal/middleware"
	"fashion-store/internal/prefs"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest adds one unit of a product variant to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

// UpdateItemRequest sets a line item's quantity to an absolute value.
// Zero or negative quantities remove the line item.
type UpdateItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemRequest removes a line item by its variant key.
type RemoveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

// CartResponse is the cart snapshot returned after every cart operation.
type CartResponse struct {
	Items               []domain.LineItem `json:"items"`
	TotalItems          int               `json:"total_items"`
	TotalPrice          float64           `json:"total_price"`
	Currency            string            `json:"currency"`
	TotalPriceDisplay   string            `json:"total_price_display"`
	TotalPriceConverted float64           `json:"total_price_converted"`
}

// CartHandler serves the session cart. The session middleware puts the cart
// store on the request context before any of these run.
type CartHandler struct {
	catalog  *catalog.Catalog
	prefs    prefs.Store
	defaults prefs.Preferences
	recorder *analytics.Recorder
	logger   *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cat *catalog.Catalog, prefStore prefs.Store, defaults prefs.Preferences, recorder *analytics.Recorder, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		catalog:  cat,
		prefs:    prefStore,
		defaults: defaults,
		recorder: recorder,
		logger:   logger,
	}
}

// RegisterRoutes registers the cart routes behind the session middleware.
func (h *CartHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/", h.Get)
		r.Post("/items", h.AddItem)
		r.Put("/items", h.UpdateItem)
		r.Delete("/items", h.RemoveItem)
		r.Delete("/", h.Clear)
	})
}

func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	store, ok := middleware.GetCartStore(r.Context())
	if !ok {
		h.logger.Error("Cart store missing from request context", zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, http.StatusInternalServerError, "session not initialized")
		return nil, false
	}
	return store, true
}

func (h *CartHandler) snapshot(ctx context.Context, store *cart.Store) CartResponse {
	currency := h.defaults.Currency

	if session, ok := middleware.GetSessionToken(ctx); ok {
		if p, err := prefs.Load(ctx, h.prefs, session, h.defaults); err == nil {
			currency = p.Currency
		}
	}

	total := store.TotalPrice()
	converted := i18n.Convert(total, i18n.DefaultCurrency, currency)

	return CartResponse{
		Items:               store.Items(),
		TotalItems:          store.TotalItems(),
		TotalPrice:          total,
		Currency:            currency,
		TotalPriceDisplay:   i18n.FormatPrice(converted, currency),
		TotalPriceConverted: converted,
	}
}

// Get returns the current cart snapshot.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.snapshot(r.Context(), store))
}

// AddItem adds one unit of a product variant. The variant guard lives here:
// the size and color must belong to the product's declared sets, and the
// product must be in stock. The cart store itself accepts any key.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.FindByID(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	if !product.InStock {
		middleware.RespondWithError(w, http.StatusConflict, "product is out of stock")
		return
	}

	if !product.HasSize(req.Size) || !product.HasColor(req.Color) {
		middleware.RespondWithError(w, http.StatusBadRequest, "selected size or color is not available for this product")
		return
	}

	store.AddItem(product, req.Size, req.Color)

	h.recorder.Record(analytics.EventAddToCart, product.Price, map[string]string{
		"item_id":   product.ID,
		"item_name": product.Name,
		"size":      req.Size,
		"color":     req.Color,
	})

	middleware.RespondWithJSON(w, http.StatusOK, h.snapshot(r.Context(), store))
}

// UpdateItem sets a line item's quantity. Updating an absent key is a silent
// no-op, matching the store's contract.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store.UpdateQuantity(req.ProductID, req.Size, req.Color, req.Quantity)

	middleware.RespondWithJSON(w, http.StatusOK, h.snapshot(r.Context(), store))
}

// RemoveItem deletes a line item. Removing an absent key is not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req RemoveItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store.RemoveItem(req.ProductID, req.Size, req.Color)

	h.recorder.Record(analytics.EventRemoveFromCart, 0, map[string]string{
		"item_id": req.ProductID,
		"size":    req.Size,
		"color":   req.Color,
	})

	middleware.RespondWithJSON(w, http.StatusOK, h.snapshot(r.Context(), store))
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	store.Clear()

	middleware.RespondWithJSON(w, http.StatusOK, h.snapshot(r.Context(), store))
}
