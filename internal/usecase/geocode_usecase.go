package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// AutocompleteState is the state of the address autocomplete.
type AutocompleteState struct {
	Query      string                    `json:"query"`
	Pending    bool                      `json:"pending"` // A lookup is scheduled or in flight.
	Candidates []entity.GeocodeCandidate `json:"candidates"`
}

// GeocodeUsecase feeds geocoding suggestions to the address form.
type GeocodeUsecase interface {
	// Autocomplete records a keystroke and schedules a debounced lookup.
	Autocomplete(query string) *AutocompleteState

	// Candidates returns the current autocomplete state.
	Candidates() *AutocompleteState

	// SelectCandidate converts the candidate at index into address form fields.
	SelectCandidate(index int) (*AddressForm, error)

	// Search performs an immediate lookup.
	Search(ctx context.Context, query string) []entity.GeocodeCandidate
}
