// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// In the console the persistence layer is the building management REST API.
package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// DefaultPageLimit is the page size used when a query does not set one.
const DefaultPageLimit = 10

// ListQuery selects a page of a remote collection.
type ListQuery struct {
	Page  int
	Limit int
	Role  entity.Role // Only honoured by user listings.
}

// Normalize fills unset paging fields.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}

	return q
}

// AddressRepository defines the interface for address-related backend operations.
type AddressRepository interface {
	// ListAddresses retrieves one page of addresses.
	ListAddresses(ctx context.Context, query ListQuery) (*entity.Page[entity.Address], error)

	// FindAddressByID retrieves an address by its ID.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// CreateAddress submits a new address.
	CreateAddress(ctx context.Context, draft *entity.AddressDraft) (*entity.Address, error)

	// UpdateAddress submits a partial update carrying only the given fields.
	UpdateAddress(ctx context.Context, id int64, changes entity.AddressChanges) (*entity.Address, error)

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id int64) error
}
