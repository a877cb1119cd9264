package api

import (
	"context"
	"net/http"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

type userRepository struct {
	client *Client
}

// NewUserRepository creates a UserRepository backed by the REST API.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) ListUsers(ctx context.Context, query repository.ListQuery) (*entity.Page[entity.User], error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		query:  pageParams(query),
	})
	if err != nil {
		return nil, err
	}

	c, err := decodeCollection(body, "users")
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(c, (*userDTO).toEntity)
	if err != nil {
		return nil, errors.Wrap(err, "decode users")
	}

	return &entity.Page[entity.User]{Items: items, Pagination: c.pagination}, nil
}
