package impl

import (
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/usecase"
)

// diffAddress compares a validated form with the pre-edit snapshot and returns only the fields that differ.
// Strings compare trimmed; coordinates and manager compare numerically with absent and null equivalent.
func diffAddress(snapshot *entity.Address, form *usecase.AddressForm) entity.AddressChanges {
	changes := entity.AddressChanges{}

	if strings.TrimSpace(snapshot.Address) != form.Address {
		changes[entity.FieldAddress] = form.Address
	}
	if strings.TrimSpace(snapshot.City) != form.City {
		changes[entity.FieldCity] = form.City
	}

	if lat := parseOptionalFloat(form.Latitude); !sameFloat(snapshot.Latitude, lat) {
		changes[entity.FieldLatitude] = optionalValue(lat)
	}
	if long := parseOptionalFloat(form.Longitude); !sameFloat(snapshot.Longitude, long) {
		changes[entity.FieldLongitude] = optionalValue(long)
	}

	if manager := usecase.ParseManagerID(form.ManagerID); !sameID(normalizeManager(snapshot.ManagerID), manager) {
		changes[entity.FieldManagerID] = optionalValue(manager)
	}

	return changes
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func normalizeManager(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}

	return id
}

// optionalValue unwraps a pointer into a diff value; nil stays an untyped nil.
func optionalValue[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}
