package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsense-server/src/util"
)

func TestUIDAuthMiddlewareDisabled(t *testing.T) {
	called := false
	h := UIDAuthMiddleware("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/records", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUIDAuthMiddlewareSetsUID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": "user-42"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	var got string
	h := UIDAuthMiddleware("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = util.RequestUID(r, "body-uid")
	}))

	req := httptest.NewRequest("GET", "/api/records", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", got, "token uid must win over the body uid")
}

func TestUIDAuthMiddlewareRejectsBadToken(t *testing.T) {
	h := UIDAuthMiddleware("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an invalid token")
	}))

	req := httptest.NewRequest("GET", "/api/records", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUIDAuthMiddlewareRejectsMissingUIDClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-42"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	h := UIDAuthMiddleware("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a uid claim")
	}))

	req := httptest.NewRequest("GET", "/api/records", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
