package middleware

import (
	"context"
	"net/http"

	"fashion-store/internal/cart"

	"go.uber.org/zap"
)

// SessionTokenHeader carries the opaque shopping-session token. The server
// issues one on the first request that touches the cart and echoes it back in
// the response so the client can pin it.
const SessionTokenHeader = "X-Session-Token"

const (
	sessionTokenKey contextKey = "session_token"
	cartStoreKey    contextKey = "cart_store"
)

// CartSessionMiddleware resolves the request's session token to its cart
// store, creating a fresh session when the token is absent or expired, and
// places both on the request context.
func CartSessionMiddleware(sessions *cart.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)

			store, ok := sessions.Get(token)
			if !ok {
				token, store = sessions.Create()
				logger.Debug("New shopping session", zap.String("session", token))
			}

			w.Header().Set(SessionTokenHeader, token)

			ctx := context.WithValue(r.Context(), sessionTokenKey, token)
			ctx = context.WithValue(ctx, cartStoreKey, store)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionToken extracts the session token from the request context.
func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	return token, ok
}

// GetCartStore extracts the session's cart store from the request context.
func GetCartStore(ctx context.Context) (*cart.Store, bool) {
	store, ok := ctx.Value(cartStoreKey).(*cart.Store)
	return store, ok
}
