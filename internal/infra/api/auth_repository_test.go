package api

import (
	"context"
	"net/http"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_Login(t *testing.T) {
	session := newFakeSession("")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"data":{"access_token":"abc","refresh_token":"def","user":{"id":"1","name":"Olena Koval","email":"olena@example.com","role":"SUPER_ADMIN"}}}`)
	}, session)

	got, err := NewAuthRepository(client).Login(context.Background(), entity.Credentials{Email: "olena@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, "def", got.RefreshToken)
	require.NotNil(t, got.User)
	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, "Olena", got.User.FirstName)
	assert.Equal(t, "Koval", got.User.LastName)
	assert.Equal(t, entity.RoleSuperAdmin, got.User.Role)
}

func TestAuthRepository_Login_InvalidCredentials(t *testing.T) {
	session := newFakeSession("")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	}, session)

	_, err := NewAuthRepository(client).Login(context.Background(), entity.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Zero(t, session.teardowns)
}

func TestAuthRepository_Login_MissingToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	}, newFakeSession(""))

	_, err := NewAuthRepository(client).Login(context.Background(), entity.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedEnvelope)
}
