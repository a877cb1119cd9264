package session

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession() *entity.Session {
	return &entity.Session{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		User: &entity.User{
			ID:        42,
			FirstName: "Olena",
			LastName:  "Koval",
			Email:     "olena@example.com",
			Role:      entity.RoleAdmin,
			IsActive:  true,
		},
	}
}

func newTestFileStorePath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "nested", "session.json")
}

// stubInspector returns a fixed expiry, or an error for opaque tokens.
type stubInspector struct {
	expiresAt time.Time
	opaque    bool
}

func (s stubInspector) Inspect(string) (*service.TokenClaims, error) {
	if s.opaque {
		return nil, errors.New("not a jwt")
	}

	return &service.TokenClaims{ExpiresAt: s.expiresAt}, nil
}
