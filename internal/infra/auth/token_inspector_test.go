package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_ReadsExpiryAndSubject(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": expiresAt.Unix(),
	})

	claims, err := NewTokenInspector().Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestTokenInspector_NoExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})

	claims, err := NewTokenInspector().Inspect(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestTokenInspector_OpaqueToken(t *testing.T) {
	_, err := NewTokenInspector().Inspect("opaque-session-token")
	assert.Error(t, err)
}
