// Package session owns the operator session and its durable storage.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"go.uber.org/fx"
)

// Manager is the single owner of the session. It implements service.SessionContext.
type Manager struct {
	// writeMu serializes Establish and Teardown across memory and durable storage.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	current   *entity.Session
	listeners []func()

	repo      repository.SessionRepository
	inspector service.TokenInspector
	logger    *slog.Logger
	now       func() time.Time
}

// ManagerParams holds dependencies for Manager, injected by Fx
type ManagerParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Repo      repository.SessionRepository
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

// NewManager creates the session owner and restores the persisted session on start.
func NewManager(params ManagerParams) *Manager {
	m := &Manager{
		repo:      params.Repo,
		inspector: params.Inspector,
		logger:    params.Logger,
		now:       time.Now,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: m.Restore,
		})
	}

	return m
}

// AsSessionContext exposes the manager through the domain interface.
func AsSessionContext(m *Manager) service.SessionContext {
	return m
}

// Restore loads the persisted session. A missing or expired session leaves the console signed out.
func (m *Manager) Restore(ctx context.Context) error {
	session, err := m.repo.LoadSession(ctx)
	if errors.Is(err, repository.ErrSessionNotFound) {
		m.logger.Info("No persisted session")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load session")
	}

	m.stampExpiry(session)
	if session.Expired(m.now()) {
		m.logger.Info("Persisted session expired, clearing", slog.Time("expires_at", session.ExpiresAt))

		return m.Teardown(ctx)
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.logger.Info("Session restored", slog.Int64("user_id", userID(session)))

	return nil
}

// Current returns a copy of the active session, or nil when signed out.
func (m *Manager) Current() *entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}

	out := *m.current
	if m.current.User != nil {
		user := *m.current.User
		out.User = &user
	}

	return &out
}

// Token returns the active bearer token, or an empty string.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}

	return m.current.Token
}

// Establish replaces the active session and persists it.
func (m *Manager) Establish(ctx context.Context, session *entity.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("session token is required")
	}

	m.stampExpiry(session)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.repo.SaveSession(ctx, session); err != nil {
		return errors.Wrap(err, "save session")
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	return nil
}

// Teardown clears the session in memory first so no stale profile stays readable,
// then purges durable storage and notifies listeners.
func (m *Manager) Teardown(ctx context.Context) error {
	m.writeMu.Lock()
	m.mu.Lock()
	m.current = nil
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	return m.finishTeardown(ctx, listeners)
}

// TeardownIf tears the session down only while token is still the active one.
// A rejection of a token that has since been replaced leaves the newer session alone.
func (m *Manager) TeardownIf(ctx context.Context, token string) (bool, error) {
	m.writeMu.Lock()
	m.mu.Lock()
	if m.current == nil || token == "" || m.current.Token != token {
		m.mu.Unlock()
		m.writeMu.Unlock()

		return false, nil
	}
	m.current = nil
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	return true, m.finishTeardown(ctx, listeners)
}

// finishTeardown purges storage, releases writeMu, then notifies listeners.
func (m *Manager) finishTeardown(ctx context.Context, listeners []func()) error {
	err := m.repo.ClearSession(ctx)
	m.writeMu.Unlock()

	for _, fn := range listeners {
		fn()
	}

	if err != nil {
		return errors.Wrap(err, "clear session")
	}

	return nil
}

// OnTeardown registers a callback run after every teardown.
func (m *Manager) OnTeardown(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

func (m *Manager) stampExpiry(session *entity.Session) {
	if m.inspector == nil || !session.ExpiresAt.IsZero() {
		return
	}

	claims, err := m.inspector.Inspect(session.Token)
	if err != nil {
		m.logger.Debug("Session token is opaque, expiry unknown", slog.Any("error", err))

		return
	}
	session.ExpiresAt = claims.ExpiresAt
}

func userID(session *entity.Session) int64 {
	if session.User == nil {
		return 0
	}

	return session.User.ID
}
