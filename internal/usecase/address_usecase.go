// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// AddressForm carries the operator's address form input as typed text.
type AddressForm struct {
	Address   string `json:"address" validate:"required,max=200"`
	City      string `json:"city" validate:"required,max=100"`
	Latitude  string `json:"latitude" validate:"omitempty,lat"`
	Longitude string `json:"longitude" validate:"omitempty,lng"`
	ManagerID string `json:"managerId"`
}

// NoticeLevel classifies an operator notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a user-facing notification produced by a workflow step.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Outcome is the result of an address mutation.
type Outcome struct {
	Address *entity.Address `json:"address,omitempty"`
	Notice  Notice          `json:"notice"`
}

// AddressDetails is the state of the address details view.
type AddressDetails struct {
	Open        bool            `json:"open"`
	AddressID   int64           `json:"addressId,omitempty"`
	Address     *entity.Address `json:"address,omitempty"`
	Loading     bool            `json:"loading"`
	Error       string          `json:"error,omitempty"`
	Provisional bool            `json:"provisional"` // Holds a local patch not yet confirmed by a list fetch.
}

// AddressUsecase defines the address management workflow.
type AddressUsecase interface {
	// Mutations
	CreateAddress(ctx context.Context, form *AddressForm) (*Outcome, error)
	EditAddress(ctx context.Context, id int64, form *AddressForm) (*Outcome, error)
	DeleteAddress(ctx context.Context, id int64) (*Outcome, error)
	AssignManager(ctx context.Context, id int64, managerID *int64) (*Outcome, error)
	UnassignManager(ctx context.Context, id int64) (*Outcome, error)

	// ManagerCandidates lists the users an address may be linked to.
	ManagerCandidates(ctx context.Context) ([]entity.User, error)

	// Details view
	OpenDetails(ctx context.Context, id int64) (*AddressDetails, error)
	Details() *AddressDetails
	CloseDetails()
}
