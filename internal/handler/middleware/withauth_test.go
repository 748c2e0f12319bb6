package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ushnuel/next-dashboard/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		PrivateKey:       "test-key",
		AuthDisabledURLs: []string{"/login"},
	}
}

func signedToken(t *testing.T, key string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func guarded(cfg *config.Config, seenUserID *string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seenUserID = r.Header.Get("User-ID")
		w.WriteHeader(http.StatusOK)
	})

	return WithAuth(cfg)(next)
}

func TestWithAuthOpenURL(t *testing.T) {
	var userID string
	h := guarded(testConfig(), &userID)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithAuthMissingToken(t *testing.T) {
	var userID string
	h := guarded(testConfig(), &userID)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthBadToken(t *testing.T) {
	var userID string
	h := guarded(testConfig(), &userID)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-key"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthValidToken(t *testing.T) {
	cfg := testConfig()
	var userID string
	h := guarded(cfg, &userID)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg.PrivateKey))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", userID)
}
