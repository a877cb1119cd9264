package service

import (
	"context"

	"portal/internal/domain/entity"
)

// SessionContext is the single owner of the operator session.
// Components read authentication state through it and never persist it themselves.
type SessionContext interface {
	// Current returns a copy of the active session, or nil when signed out.
	Current() *entity.Session

	// Token returns the active bearer token, or an empty string.
	Token() string

	// Establish replaces the active session and persists it.
	Establish(ctx context.Context, session *entity.Session) error

	// Teardown clears the session from memory and durable storage and notifies listeners.
	Teardown(ctx context.Context) error

	// TeardownIf tears the session down only if token is still the active one.
	// It reports whether a teardown happened.
	TeardownIf(ctx context.Context, token string) (bool, error)

	// OnTeardown registers a callback run after every teardown.
	OnTeardown(fn func())
}
