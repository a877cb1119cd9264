package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// LoginInput represents the input for operator sign-in
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase defines the interface for operator session management.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.User, error)
}
