package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airjustice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	if a, ok := AuthorityFromContext(r); ok {
		w.Header().Set("X-Authority", a)
	}
	w.WriteHeader(http.StatusOK)
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminAuth(t *testing.T) {
	h := RequireAdminAuth("s3cret")(http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, serve(h, "Bearer s3cret").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, "").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, "Bearer wrong").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, "Basic s3cret").Code)

	disabled := RequireAdminAuth("")(http.HandlerFunc(okHandler))
	rec := serve(disabled, "Bearer anything")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access not configured")
}

func TestRequireAuthorityAuth(t *testing.T) {
	secret := "jwt-secret"
	h := NewAuthorityAuthMiddleware(secret, nil).RequireAuthorityAuth(http.HandlerFunc(okHandler))

	token, err := utils.GenerateAuthorityJWT("NGT Registry", []byte(secret), 1, time.Now())
	require.NoError(t, err)
	rec := serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NGT Registry", rec.Header().Get("X-Authority"))

	unknown, err := utils.GenerateAuthorityJWT("Nobody", []byte(secret), 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+unknown).Code)

	forged, err := utils.GenerateAuthorityJWT("NGT Registry", []byte("other"), 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+forged).Code)

	expired, err := utils.GenerateAuthorityJWT("NGT Registry", []byte(secret), 1, time.Now().Add(-3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+expired).Code)

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
}

func TestRequireAuthorityAuth_UsesInjectedClock(t *testing.T) {
	secret := "jwt-secret"
	issued := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	now := issued
	h := NewAuthorityAuthMiddleware(secret, func() time.Time { return now }).RequireAuthorityAuth(http.HandlerFunc(okHandler))

	token, err := utils.GenerateAuthorityJWT("NGT Registry", []byte(secret), 24, issued)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, serve(h, "Bearer "+token).Code)

	now = issued.Add(25 * time.Hour)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+token).Code)
}
