package transport

import (
	"net/http"
	"strings"

	"fashion-store/internal/i18n"
	"fashion-store/internal/middleware"
	"fashion-store/internal/prefs"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdatePreferencesRequest changes the session's locale and currency.
type UpdatePreferencesRequest struct {
	Locale   string `json:"locale" validate:"required"`
	Currency string `json:"currency" validate:"required"`
}

// PreferencesHandler reads and writes per-session display preferences.
type PreferencesHandler struct {
	prefs    prefs.Store
	defaults prefs.Preferences
	logger   *zap.Logger
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(store prefs.Store, defaults prefs.Preferences, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{prefs: store, defaults: defaults, logger: logger}
}

// RegisterRoutes registers the preference routes behind the session
// middleware; the options listing needs no session.
func (h *PreferencesHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Get("/api/preferences/options", h.Options)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/api/preferences", h.Get)
		r.Put("/api/preferences", h.Update)
		r.Get("/api/preferences/translations", h.Translations)
	})
}

// Options lists the supported languages and currencies.
func (h *PreferencesHandler) Options(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"languages":  i18n.Languages(),
		"currencies": i18n.Currencies(),
	})
}

// requestDefaults derives the fallback preferences for a request. An
// Accept-Language header beats the configured default locale, mirroring the
// browser-language detection of the storefront.
func (h *PreferencesHandler) requestDefaults(r *http.Request) prefs.Preferences {
	defaults := h.defaults
	if header := r.Header.Get("Accept-Language"); header != "" {
		tag := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
		defaults.Locale = i18n.NormalizeLanguage(tag)
	}
	return defaults
}

// Get returns the session's preferences, falling back to the request-derived
// defaults for anything never set.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session not initialized")
		return
	}

	p, err := prefs.Load(r.Context(), h.prefs, session, h.requestDefaults(r))
	if err != nil {
		h.logger.Error("Failed to load preferences", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, p)
}

// Translations returns the message table for the session's locale.
func (h *PreferencesHandler) Translations(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session not initialized")
		return
	}

	p, err := prefs.Load(r.Context(), h.prefs, session, h.requestDefaults(r))
	if err != nil {
		h.logger.Error("Failed to load preferences", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locale":   p.Locale,
		"messages": i18n.Translations(p.Locale),
	})
}

// Update stores a new locale and currency for the session. Both must be
// supported values.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session not initialized")
		return
	}

	var req UpdatePreferencesRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, ok := i18n.LanguageByCode(req.Locale); !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "unsupported locale")
		return
	}
	if _, ok := i18n.CurrencyByCode(req.Currency); !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "unsupported currency")
		return
	}

	p := prefs.Preferences{Locale: req.Locale, Currency: req.Currency}
	if err := prefs.Save(r.Context(), h.prefs, session, p); err != nil {
		h.logger.Error("Failed to save preferences", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, p)
}
