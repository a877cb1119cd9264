package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// Fixed keys under which the session is persisted.
const (
	SessionKeyToken        = "token"
	SessionKeyRefreshToken = "refreshToken"
	SessionKeyUser         = "user"
)

// ErrSessionNotFound is returned when no session has been persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the operator session in durable storage.
type SessionRepository interface {
	// SaveSession writes the token, refresh token and user profile keys.
	SaveSession(ctx context.Context, session *entity.Session) error

	// LoadSession reads the persisted session. Returns ErrSessionNotFound when the token key is absent.
	LoadSession(ctx context.Context) (*entity.Session, error)

	// ClearSession removes every session key.
	ClearSession(ctx context.Context) error
}
