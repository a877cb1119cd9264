package repository

import (
	"context"

	"portal/internal/domain/entity"
)

// UserRepository defines the interface for user-related backend operations.
type UserRepository interface {
	// ListUsers retrieves one page of users, optionally filtered by role.
	ListUsers(ctx context.Context, query ListQuery) (*entity.Page[entity.User], error)
}
