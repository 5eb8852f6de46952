package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kavishzap/native-wallet/internal/platform/session"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// SessionKey is the context key for the active session
	SessionKey ContextKey = "session"
	// SessionTokenKey is the context key for the raw session token
	SessionTokenKey ContextKey = "session_token"
)

// SessionAuth creates a middleware that resolves the bearer token into a
// session. A missing or cleared session yields 401, which is the signal for
// the client to route back to the login flow.
func SessionAuth(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			token := parts[1]

			sess, err := store.Current(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					http.Error(w, "session expired or not found", http.StatusUnauthorized)
					return
				}
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}

			if !sess.Authenticated {
				http.Error(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			ctx = context.WithValue(ctx, SessionTokenKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext extracts the active session from the request context
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}

// GetSessionTokenFromContext extracts the raw session token from the request context
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenKey).(string)
	return token, ok
}
