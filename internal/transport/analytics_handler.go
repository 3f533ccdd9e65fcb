package transport

import (
	"net/http"

	"fashion-store/internal/analytics"
	"fashion-store/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// AnalyticsHandler exposes the in-memory event buffer to admins.
type AnalyticsHandler struct {
	recorder *analytics.Recorder
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(recorder *analytics.Recorder) *AnalyticsHandler {
	return &AnalyticsHandler{recorder: recorder}
}

// RegisterRoutes registers the analytics routes behind auth + admin checks.
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(adminMiddleware)
		r.Get("/api/analytics/events", h.Events)
	})
}

// Events returns the buffered events, oldest first.
func (h *AnalyticsHandler) Events(w http.ResponseWriter, r *http.Request) {
	events := h.recorder.Events()
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}
