package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authCall(t *testing.T, secret, authHeader string) int {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/import-dataset/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	AuthMiddleware(secret)(next).ServeHTTP(rec, req)

	return rec.Code
}

func signedToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestAuthMiddlewareSecretoVacioDejaPasar(t *testing.T) {
	assert.Equal(t, http.StatusOK, authCall(t, "", ""))
}

func TestAuthMiddlewareSinHeader(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, authCall(t, "secreto", ""))
}

func TestAuthMiddlewareSinBearer(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, authCall(t, "secreto", "Basic abc"))
}

func TestAuthMiddlewareTokenInvalido(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, authCall(t, "secreto", "Bearer no-es-un-jwt"))
}

func TestAuthMiddlewareTokenConOtroSecreto(t *testing.T) {
	token := signedToken(t, "otro-secreto")
	assert.Equal(t, http.StatusUnauthorized, authCall(t, "secreto", "Bearer "+token))
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	token := signedToken(t, "secreto")
	assert.Equal(t, http.StatusOK, authCall(t, "secreto", "Bearer "+token))
}
