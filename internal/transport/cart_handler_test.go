package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fashion-store/internal/analytics"
	"fashion-store/internal/catalog"
	"fashion-store/internal/cart"
	"fashion-store/internal/i18n"
	custommiddleware "fashion-store/internal/middleware"
	"fashion-store/internal/prefs"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cartTestServer struct {
	router   *chi.Mux
	prefs    *prefs.MemoryStore
	recorder *analytics.Recorder
}

func newCartTestServer(t *testing.T) *cartTestServer {
	t.Helper()

	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)

	sessions := cart.NewManager(time.Minute)
	t.Cleanup(sessions.Close)

	store := prefs.NewMemoryStore()
	recorder := analytics.NewRecorder(100, zap.NewNop())
	defaults := prefs.Preferences{Locale: "en", Currency: "USD"}

	router := chi.NewRouter()
	sessionMw := custommiddleware.CartSessionMiddleware(sessions, zap.NewNop())
	NewCartHandler(cat, store, defaults, recorder, zap.NewNop()).RegisterRoutes(router, sessionMw)

	return &cartTestServer{router: router, prefs: store, recorder: recorder}
}

// do sends a cart request, reusing the given session token when non-empty, and
// decodes the snapshot on a 200.
func (s *cartTestServer) do(t *testing.T, method, path string, payload interface{}, token string) (*httptest.ResponseRecorder, CartResponse) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(custommiddleware.SessionTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var snapshot CartResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	}
	return rec, snapshot
}

func TestCartGetIssuesSession(t *testing.T) {
	s := newCartTestServer(t)

	rec, snapshot := s.do(t, http.MethodGet, "/api/cart", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(custommiddleware.SessionTokenHeader))
	assert.Empty(t, snapshot.Items)
	assert.Zero(t, snapshot.TotalItems)
	assert.Equal(t, "USD", snapshot.Currency)
}

func TestCartAddItem(t *testing.T) {
	s := newCartTestServer(t)

	add := AddItemRequest{ProductID: "1", Size: "M", Color: "Black"}
	rec, snapshot := s.do(t, http.MethodPost, "/api/cart/items", add, "")
	token := rec.Header().Get(custommiddleware.SessionTokenHeader)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.InDelta(t, 29.99, snapshot.TotalPrice, 1e-9)

	// Same variant again collapses into the existing line item.
	rec, snapshot = s.do(t, http.MethodPost, "/api/cart/items", add, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 2, snapshot.TotalItems)

	events := s.recorder.Events()
	require.Len(t, events, 2)
	assert.Equal(t, analytics.EventAddToCart, events[0].Name)
}

func TestCartAddUnknownProduct(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "999", Size: "M", Color: "Black"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddOutOfStockProduct(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "7", Size: "M", Color: "Navy"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCartAddInvalidVariant(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "XXXL", Color: "Black"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "M", Color: "Neon Pink"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartAddMissingFields(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartUpdateQuantity(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "2", Size: "32", Color: "Indigo"}, "")
	token := rec.Header().Get(custommiddleware.SessionTokenHeader)

	update := UpdateItemRequest{ProductID: "2", Size: "32", Color: "Indigo", Quantity: 5}
	rec, snapshot := s.do(t, http.MethodPut, "/api/cart/items", update, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, snapshot.TotalItems)
	assert.InDelta(t, 5*79.99, snapshot.TotalPrice, 1e-9)

	// Zero quantity removes the line item.
	update.Quantity = 0
	rec, snapshot = s.do(t, http.MethodPut, "/api/cart/items", update, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Items)
}

func TestCartUpdateAbsentItemIsNoop(t *testing.T) {
	s := newCartTestServer(t)

	update := UpdateItemRequest{ProductID: "2", Size: "32", Color: "Indigo", Quantity: 3}
	rec, snapshot := s.do(t, http.MethodPut, "/api/cart/items", update, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Items)
}

func TestCartRemoveItem(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "M", Color: "White"}, "")
	token := rec.Header().Get(custommiddleware.SessionTokenHeader)

	remove := RemoveItemRequest{ProductID: "1", Size: "M", Color: "White"}
	rec, snapshot := s.do(t, http.MethodDelete, "/api/cart/items", remove, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Items)

	// Removing it again is not an error.
	rec, _ = s.do(t, http.MethodDelete, "/api/cart/items", remove, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartClear(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "M", Color: "White"}, "")
	token := rec.Header().Get(custommiddleware.SessionTokenHeader)
	s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "3", Size: "L", Color: "Cream"}, token)

	rec, snapshot := s.do(t, http.MethodDelete, "/api/cart", nil, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Items)
	assert.Zero(t, snapshot.TotalItems)
}

func TestCartCurrencyConversion(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "M", Color: "Black"}, "")
	token := rec.Header().Get(custommiddleware.SessionTokenHeader)

	err := prefs.Save(context.Background(), s.prefs, token, prefs.Preferences{Locale: "fr", Currency: "EUR"})
	require.NoError(t, err)

	rec, snapshot := s.do(t, http.MethodGet, "/api/cart", nil, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EUR", snapshot.Currency)
	assert.InDelta(t, 29.99, snapshot.TotalPrice, 1e-9)
	assert.InDelta(t, i18n.Convert(29.99, "USD", "EUR"), snapshot.TotalPriceConverted, 1e-9)
	assert.Equal(t, i18n.FormatPrice(snapshot.TotalPriceConverted, "EUR"), snapshot.TotalPriceDisplay)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	s := newCartTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "1", Size: "M", Color: "Black"}, "")
	first := rec.Header().Get(custommiddleware.SessionTokenHeader)

	rec, snapshot := s.do(t, http.MethodGet, "/api/cart", nil, "")
	second := rec.Header().Get(custommiddleware.SessionTokenHeader)

	assert.NotEqual(t, first, second)
	assert.Empty(t, snapshot.Items)

	_, snapshot = s.do(t, http.MethodGet, "/api/cart", nil, first)
	assert.Len(t, snapshot.Items, 1)
}
