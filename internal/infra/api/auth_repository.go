package api

import (
	"context"
	"encoding/json"
	"net/http"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates an AuthRepository backed by the REST API.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, credentials entity.Credentials) (*entity.Session, error) {
	body, err := r.client.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      credentials,
		anonymous: true,
	})
	if err != nil {
		var upstream *domainerrors.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode() == http.StatusUnauthorized {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	raw, err := decodeRecord(body, "session")
	if err != nil {
		return nil, err
	}

	var dto loginDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, errors.Wrap(err, "decode login response")
	}

	session := dto.toEntity()
	if session.Token == "" {
		return nil, &UnrecognizedEnvelopeError{Resource: "session", Keys: sortedKeysOf(raw)}
	}

	return session, nil
}

func sortedKeysOf(raw json.RawMessage) []string {
	obj, ok := decodeObjectMap(raw)
	if !ok {
		return nil
	}

	return sortedKeys(obj)
}
