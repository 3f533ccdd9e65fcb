package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fashion-store/internal/analytics"
	custommiddleware "fashion-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const analyticsTestSecret = "analytics-test-secret"

func newAnalyticsRouter(t *testing.T) (*chi.Mux, *analytics.Recorder) {
	t.Helper()

	recorder := analytics.NewRecorder(100, zap.NewNop())

	router := chi.NewRouter()
	authMw := custommiddleware.AuthMiddleware(analyticsTestSecret, zap.NewNop())
	adminMw := custommiddleware.RequireAdmin(zap.NewNop())
	NewAnalyticsHandler(recorder).RegisterRoutes(router, authMw, adminMw)

	return router, recorder
}

func signAnalyticsToken(t *testing.T, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(analyticsTestSecret))
	require.NoError(t, err)
	return signed
}

func TestAnalyticsEventsRequiresAuth(t *testing.T) {
	router, _ := newAnalyticsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalyticsEventsRequiresAdmin(t *testing.T) {
	router, _ := newAnalyticsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/events", nil)
	req.Header.Set("Authorization", "Bearer "+signAnalyticsToken(t, "user"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnalyticsEvents(t *testing.T) {
	router, recorder := newAnalyticsRouter(t)

	recorder.Record(analytics.EventPageView, 0, map[string]string{"page": "/"})
	recorder.Record(analytics.EventViewItem, 29.99, map[string]string{"item_id": "1"})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/events", nil)
	req.Header.Set("Authorization", "Bearer "+signAnalyticsToken(t, "admin"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Events []analytics.Event `json:"events"`
		Total  int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Events, 2)
	assert.Equal(t, analytics.EventPageView, body.Events[0].Name)
	assert.Equal(t, analytics.EventViewItem, body.Events[1].Name)
}
