package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// OccupantsResult lists the users subscribed to devices at an address.
type OccupantsResult struct {
	AddressID      int64         `json:"addressId"`
	Users          []entity.User `json:"users"`
	SkippedDevices []int64       `json:"skippedDevices,omitempty"` // Devices whose details could not be read.
}

// OccupantUsecase resolves which users are linked to an address through its devices.
type OccupantUsecase interface {
	ResolveOccupants(ctx context.Context, addressID int64) (*OccupantsResult, error)
}
