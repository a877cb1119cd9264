// Package service defines interfaces for domain services backed by external systems.
package service

import (
	"context"

	"portal/internal/domain/entity"
)

// Geocoder resolves free-text queries into ranked address candidates.
type Geocoder interface {
	// Search returns at most limit candidates for the query.
	Search(ctx context.Context, query string, limit int) ([]entity.GeocodeCandidate, error)
}
