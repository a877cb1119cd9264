package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

// fileStore keeps the session keys in a single JSON document on disk.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a SessionRepository writing to path.
func NewFileStore(path string) repository.SessionRepository {
	return &fileStore{path: path}
}

func (s *fileStore) SaveSession(_ context.Context, session *entity.Session) error {
	values, err := encodeSession(session)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.WithStack(err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.Rename(tmp, s.path))
}

func (s *fileStore) LoadSession(_ context.Context) (*entity.Session, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if errors.Is(err, os.ErrNotExist) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}

	return decodeSession(values)
}

func (s *fileStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.WithStack(err)
	}

	return nil
}
