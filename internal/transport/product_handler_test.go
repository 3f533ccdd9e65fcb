package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fashion-store/internal/analytics"
	"fashion-store/internal/catalog"
	"fashion-store/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productListBody struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

func newCatalogRouter(t *testing.T) (*chi.Mux, *analytics.Recorder) {
	t.Helper()

	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)

	recorder := analytics.NewRecorder(100, zap.NewNop())
	router := chi.NewRouter()
	NewProductHandler(cat, recorder, zap.NewNop()).RegisterRoutes(router)

	return router, recorder
}

func getJSON(t *testing.T, router *chi.Mux, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestListProducts(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(catalog.Seed()), body.Total)
	assert.Len(t, body.Products, body.Total)
}

func TestListProductsByCategory(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products?category=Jeans", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body.Products)
	for _, p := range body.Products {
		assert.Equal(t, "Jeans", p.Category)
	}
}

func TestSearchProducts(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products?q=linen", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body.Products)
	assert.Equal(t, "9", body.Products[0].ID)
}

func TestSearchProductsWithinCategory(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products?q=shirt&category=T-Shirts", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body.Products)
	for _, p := range body.Products {
		assert.Equal(t, "T-Shirts", p.Category)
	}
}

func TestFeaturedProducts(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products/featured", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body.Products)
	for _, p := range body.Products {
		assert.True(t, p.Featured)
	}
}

func TestGetProduct(t *testing.T) {
	router, recorder := newCatalogRouter(t)

	var product domain.Product
	rec := getJSON(t, router, "/api/products/3", &product)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", product.ID)
	assert.Equal(t, "Oversized Hoodie", product.Name)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, analytics.EventViewItem, events[0].Name)
	assert.Equal(t, "3", events[0].Params["item_id"])
}

func TestGetProductNotFound(t *testing.T) {
	router, recorder := newCatalogRouter(t)

	rec := getJSON(t, router, "/api/products/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, recorder.Count())
}

func TestSimilarProducts(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products/1/similar", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body.Products)
	for _, p := range body.Products {
		assert.Equal(t, "T-Shirts", p.Category)
		assert.NotEqual(t, "1", p.ID)
	}
}

func TestSimilarProductsLimit(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products/1/similar?limit=1", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, body.Total)
}

func TestSimilarProductsInvalidLimit(t *testing.T) {
	router, _ := newCatalogRouter(t)

	for _, limit := range []string{"abc", "0", "-3"} {
		rec := getJSON(t, router, "/api/products/1/similar?limit="+limit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestSimilarProductsUnknownID(t *testing.T) {
	router, _ := newCatalogRouter(t)

	rec := getJSON(t, router, "/api/products/999/similar", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBoughtTogether(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body productListBody
	rec := getJSON(t, router, "/api/products/1/bought-together", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, p := range body.Products {
		assert.NotEqual(t, "1", p.ID)
	}
}

func TestCategories(t *testing.T) {
	router, _ := newCatalogRouter(t)

	var body struct {
		Categories []string `json:"categories"`
	}
	rec := getJSON(t, router, "/api/categories", &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body.Categories, "T-Shirts")
	assert.Contains(t, body.Categories, "Accessories")
}
