package repository

import (
	"context"

	"portal/internal/domain/entity"
)

// AuthRepository exchanges credentials with the backend.
type AuthRepository interface {
	// Login exchanges credentials for a session token, an optional refresh token and the user profile.
	Login(ctx context.Context, credentials entity.Credentials) (*entity.Session, error)
}
