package transport

import (
	"errors"
	"net/http"
	"strconv"

	"fashion-store/internal/analytics"
	"fashion-store/internal/catalog"
	"fashion-store/internal/domain"
	"fashion-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultSimilarLimit = 8

// ProductListResponse wraps a product listing.
type ProductListResponse struct {
	Products interface{} `json:"products"`
	Total    int         `json:"total"`
}

// ProductHandler serves the read-only catalogue.
type ProductHandler struct {
	catalog  *catalog.Catalog
	recorder *analytics.Recorder
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(cat *catalog.Catalog, recorder *analytics.Recorder, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: cat, recorder: recorder, logger: logger}
}

// RegisterRoutes registers the catalogue routes.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/products", h.List)
	r.Get("/api/products/featured", h.Featured)
	r.Get("/api/products/{id}", h.Get)
	r.Get("/api/products/{id}/similar", h.Similar)
	r.Get("/api/products/{id}/bought-together", h.BoughtTogether)
	r.Get("/api/categories", h.Categories)
}

// List returns the catalogue, filtered by ?category= and/or ?q=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	products := h.catalog.List(category)
	if query != "" {
		products = h.catalog.Search(query)
		if category != "" {
			filtered := products[:0]
			for _, p := range products {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// Featured returns the promoted products.
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Featured()
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// Get returns a single product and records a view event.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.FindByID(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	h.recorder.Record(analytics.EventViewItem, product.Price, map[string]string{
		"item_id":       product.ID,
		"item_name":     product.Name,
		"item_category": product.Category,
	})

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Similar returns products from the same category ordered by price proximity.
func (h *ProductHandler) Similar(w http.ResponseWriter, r *http.Request) {
	h.related(w, r, h.catalog.Similar)
}

// BoughtTogether returns products commonly paired with the given one.
func (h *ProductHandler) BoughtTogether(w http.ResponseWriter, r *http.Request) {
	h.related(w, r, h.catalog.BoughtTogether)
}

func (h *ProductHandler) related(w http.ResponseWriter, r *http.Request, fetch func(string, int) ([]domain.Product, error)) {
	id := chi.URLParam(r, "id")

	limit := defaultSimilarLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	products, err := fetch(id, limit)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to load related products", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load related products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// Categories returns the distinct category labels.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}
