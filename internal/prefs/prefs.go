// Package prefs stores per-session display preferences (locale, currency) as
// flat string keys behind a small key-value interface, the server-side
// counterpart of the browser's local storage. There is no schema versioning.
package prefs

import (
	"context"
	"errors"

	"fashion-store/internal/i18n"
)

const (
	KeyLocale   = "locale"
	KeyCurrency = "currency"
)

// ErrNotFound is returned when a key has never been set.
var ErrNotFound = errors.New("preference not found")

// Store is a flat string key-value store scoped by session token.
type Store interface {
	Get(ctx context.Context, session, key string) (string, error)
	Set(ctx context.Context, session, key, value string) error
}

// Preferences is the resolved preference pair for one session.
type Preferences struct {
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// Load reads a session's preferences, substituting the given defaults for
// unset keys. Only a store failure other than a missing key is an error.
func Load(ctx context.Context, store Store, session string, defaults Preferences) (Preferences, error) {
	out := defaults
	if out.Locale == "" {
		out.Locale = i18n.DefaultLanguage
	}
	if out.Currency == "" {
		out.Currency = i18n.DefaultCurrency
	}

	locale, err := store.Get(ctx, session, KeyLocale)
	if err == nil {
		out.Locale = locale
	} else if !errors.Is(err, ErrNotFound) {
		return Preferences{}, err
	}

	currency, err := store.Get(ctx, session, KeyCurrency)
	if err == nil {
		out.Currency = currency
	} else if !errors.Is(err, ErrNotFound) {
		return Preferences{}, err
	}

	return out, nil
}

// Save writes both preference keys for a session.
func Save(ctx context.Context, store Store, session string, p Preferences) error {
	if err := store.Set(ctx, session, KeyLocale, p.Locale); err != nil {
		return err
	}
	return store.Set(ctx, session, KeyCurrency, p.Currency)
}
