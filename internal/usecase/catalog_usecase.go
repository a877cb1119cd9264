package usecase

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
)

// SliceState is the synchronously readable state of a remote data slice.
type SliceState[T any] struct {
	Items      []T                  `json:"items"`
	Loading    bool                 `json:"loading"`
	Error      string               `json:"error,omitempty"`
	Pagination *entity.Pagination   `json:"pagination,omitempty"`
	Query      repository.ListQuery `json:"-"`
	Loaded     bool                 `json:"loaded"`
}

// CatalogUsecase serves the three remote data slices to the tables of the console.
type CatalogUsecase interface {
	ListAddresses(ctx context.Context, query repository.ListQuery) (*SliceState[entity.Address], error)
	ListUsers(ctx context.Context, query repository.ListQuery) (*SliceState[entity.User], error)
	ListDevices(ctx context.Context, query repository.ListQuery) (*SliceState[entity.Device], error)
}
