package session

import (
	"encoding/json"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

const keyExpiresAt = "expiresAt"

// encodeSession flattens a session into its fixed storage keys.
func encodeSession(session *entity.Session) (map[string]string, error) {
	values := map[string]string{
		repository.SessionKeyToken: session.Token,
	}

	if session.RefreshToken != "" {
		values[repository.SessionKeyRefreshToken] = session.RefreshToken
	}

	if session.User != nil {
		user, err := json.Marshal(session.User)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		values[repository.SessionKeyUser] = string(user)
	}

	if !session.ExpiresAt.IsZero() {
		values[keyExpiresAt] = session.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return values, nil
}

// decodeSession rebuilds a session from its storage keys.
func decodeSession(values map[string]string) (*entity.Session, error) {
	token := values[repository.SessionKeyToken]
	if token == "" {
		return nil, repository.ErrSessionNotFound
	}

	session := &entity.Session{
		Token:        token,
		RefreshToken: values[repository.SessionKeyRefreshToken],
	}

	if raw := values[repository.SessionKeyUser]; raw != "" {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, errors.Wrap(err, "decode session user")
		}
		session.User = &user
	}

	if raw := values[keyExpiresAt]; raw != "" {
		if expiresAt, err := time.Parse(time.RFC3339, raw); err == nil {
			session.ExpiresAt = expiresAt
		}
	}

	return session, nil
}

// storageKeys lists every key a session may occupy.
func storageKeys() []string {
	return []string{
		repository.SessionKeyToken,
		repository.SessionKeyRefreshToken,
		repository.SessionKeyUser,
		keyExpiresAt,
	}
}
