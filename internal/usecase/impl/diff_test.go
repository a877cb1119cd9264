package impl

import (
	"testing"

	"portal/internal/domain/entity"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestDiffAddress(t *testing.T) {
	snapshot := &entity.Address{
		ID:        1,
		Address:   "Khreshchatyk 1",
		City:      "Kyiv",
		Latitude:  floatPtr(50.45),
		Longitude: nil,
		ManagerID: int64Ptr(7),
	}

	tests := []struct {
		name string
		form usecase.AddressForm
		want entity.AddressChanges
	}{
		{
			name: "identical after normalization",
			form: usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv", Latitude: "50.450", ManagerID: "7"},
			want: entity.AddressChanges{},
		},
		{
			name: "only city changed",
			form: usecase.AddressForm{Address: "Khreshchatyk 1", City: "Lviv", Latitude: "50.45", ManagerID: "7"},
			want: entity.AddressChanges{entity.FieldCity: "Lviv"},
		},
		{
			name: "coordinate cleared and added",
			form: usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv", Longitude: "30.52", ManagerID: "7"},
			want: entity.AddressChanges{entity.FieldLatitude: nil, entity.FieldLongitude: 30.52},
		},
		{
			name: "manager cleared",
			form: usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv", Latitude: "50.45", ManagerID: "0"},
			want: entity.AddressChanges{entity.FieldManagerID: nil},
		},
		{
			name: "manager changed",
			form: usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv", Latitude: "50.45", ManagerID: "9"},
			want: entity.AddressChanges{entity.FieldManagerID: int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := tt.form
			assert.Equal(t, tt.want, diffAddress(snapshot, &form))
		})
	}
}

func TestDiffAddress_AbsentEqualsNull(t *testing.T) {
	snapshot := &entity.Address{Address: "A", City: "B", ManagerID: int64Ptr(0)}

	changes := diffAddress(snapshot, &usecase.AddressForm{Address: "A", City: "B"})
	assert.True(t, changes.Empty())
}
