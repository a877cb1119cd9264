// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Address field names as they travel in partial updates.
const (
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldManagerID = "managerId"
)

// Address is a managed building address.
type Address struct {
	ID        int64           `json:"id"`
	Address   string          `json:"address"`           // Free-text street address.
	City      string          `json:"city"`              // City the address belongs to.
	Latitude  *float64        `json:"latitude"`          // Optional, within [-90, 90].
	Longitude *float64        `json:"longitude"`         // Optional, within [-180, 180].
	ManagerID *int64          `json:"managerId"`         // Optional reference to a managing user.
	Manager   *UserSummary    `json:"manager,omitempty"` // Embedded manager summary when the backend provides one.
	Devices   []DeviceSummary `json:"devices,omitempty"` // Embedded device summary when the backend provides one.
}

// Location returns the address coordinates as an orb point.
// The second return value is false when either coordinate is missing.
func (a *Address) Location() (orb.Point, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*a.Longitude, *a.Latitude}, true
}

// HasManager reports whether a manager is linked to the address.
func (a *Address) HasManager() bool {
	return a.ManagerID != nil && *a.ManagerID != 0
}

// Clone returns a deep copy of the address.
func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}

	out := *a
	out.Latitude = cloneFloat(a.Latitude)
	out.Longitude = cloneFloat(a.Longitude)
	out.ManagerID = cloneInt(a.ManagerID)
	if a.Manager != nil {
		manager := *a.Manager
		out.Manager = &manager
	}
	if a.Devices != nil {
		out.Devices = append([]DeviceSummary(nil), a.Devices...)
	}

	return &out
}

// AddressDraft is the payload submitted when creating an address.
type AddressDraft struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ManagerID *int64   `json:"managerId"`
}

// AddressChanges is a minimal diff of an address keyed by field name.
// A nil value clears the field on the backend.
type AddressChanges map[string]any

// Empty reports whether the diff carries no field.
func (c AddressChanges) Empty() bool {
	return len(c) == 0
}

// Fields returns the changed field names.
func (c AddressChanges) Fields() []string {
	fields := make([]string, 0, len(c))
	for _, name := range []string{FieldAddress, FieldCity, FieldLatitude, FieldLongitude, FieldManagerID} {
		if _, ok := c[name]; ok {
			fields = append(fields, name)
		}
	}

	return fields
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v

	return &out
}

func cloneInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v

	return &out
}
