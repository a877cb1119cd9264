package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSession is an in-memory SessionContext.
type fakeSession struct {
	mu        sync.Mutex
	current   *entity.Session
	teardowns int
}

func newFakeSession(token string) *fakeSession {
	return &fakeSession{current: &entity.Session{
		Token:        token,
		RefreshToken: "refresh",
		User:         &entity.User{ID: 1, Email: "admin@example.com", Role: entity.RoleAdmin},
	}}
}

func (s *fakeSession) Current() *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ""
	}

	return s.current.Token
}

func (s *fakeSession) Establish(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = session

	return nil
}

func (s *fakeSession) Teardown(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.teardowns++

	return nil
}

func (s *fakeSession) TeardownIf(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Token != token {
		return false, nil
	}
	s.current = nil
	s.teardowns++

	return true, nil
}

func (s *fakeSession) OnTeardown(func()) {}

func newTestClient(t *testing.T, handler http.HandlerFunc, session *fakeSession) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/api/"
	cfg.Backend.Timeout = 5 * time.Second

	return NewClient(cfg, session, newDiscardLogger())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
