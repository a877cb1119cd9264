package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockusecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ops@example.com", Password: "secret"}).
		Return(&entity.Session{
			Token:     "jwt-token",
			User:      &entity.User{ID: 3, Email: "ops@example.com", Role: entity.RoleAdmin},
			ExpiresAt: expiresAt,
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ops@example.com","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "jwt-token")

	var view SessionView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, int64(3), view.User.ID)
	require.NotNil(t, view.ExpiresAt)
	assert.True(t, view.ExpiresAt.Equal(expiresAt))
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"nope"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	fields, ok := env.Error.Details["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["password"])
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ops@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_Logout(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	sessionUC.EXPECT().Logout(mock.Anything).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"signedOut":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestAuthHandler_Me_SignedOut(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	sessionUC.EXPECT().Me(mock.Anything).Return(nil, domainerrors.ErrNotAuthenticated)

	c, rec := newTestContext(http.MethodGet, "/auth/me", "")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_AUTHENTICATED", decodeEnvelope(t, rec).Error.Code)
}
