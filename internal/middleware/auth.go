package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dan9191/contact-service/internal/auth"
	"github.com/Dan9191/contact-service/internal/config"
)

type contextKey string

// userIDKey is the context key under which the verified user id is stored
const userIDKey contextKey = "userID"

// UserID extracts the authenticated user id from the request context
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a context carrying the given user id. Exported for
// handler tests.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// AuthMiddleware extracts and verifies the bearer token. A missing token is
// a 401; a malformed, forged, or expired one is a 400. On success the
// verified user id, never a client-supplied one, is placed in the context.
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	secret := []byte(cfg.JWTSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			userID, err := auth.ParseUserID(token, secret)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
