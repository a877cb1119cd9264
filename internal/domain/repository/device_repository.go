package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related backend operations.
type DeviceRepository interface {
	// ListDevices retrieves one page of device records without subscriptions.
	ListDevices(ctx context.Context, query ListQuery) (*entity.Page[entity.Device], error)

	// FindDeviceByID retrieves the full device record including its subscriptions.
	FindDeviceByID(ctx context.Context, id int64) (*entity.Device, error)
}
