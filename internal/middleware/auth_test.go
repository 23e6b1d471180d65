package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/contact-service/internal/auth"
	"github.com/Dan9191/contact-service/internal/config"
)

func authedHandler(t *testing.T, wantID int64) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	h := AuthMiddleware(cfg)(authedHandler(t, 0))

	for _, header := range []string{"", "Token abc", "bearer-less"} {
		req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	h := AuthMiddleware(cfg)(authedHandler(t, 0))

	forged, err := auth.GenerateToken(1, []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	expired, err := auth.GenerateToken(1, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged, expired} {
		req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, rr.Body.String())
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	h := AuthMiddleware(cfg)(authedHandler(t, 42))

	token, err := auth.GenerateToken(42, []byte("secret"), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
