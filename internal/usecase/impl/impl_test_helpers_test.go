package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	mockService "portal/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Geocoder: &config.GeocoderConfig{
			Limit:    5,
			MinChars: 3,
			Debounce: 20 * time.Millisecond,
			Timeout:  time.Second,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// newTeardownSession returns a session mock and a func that runs every registered teardown hook.
func newTeardownSession(t *testing.T) (*mockService.MockSessionContext, func()) {
	t.Helper()

	var hooks []func()
	session := mockService.NewMockSessionContext(t)
	session.EXPECT().
		OnTeardown(mock.Anything).
		Run(func(fn func()) { hooks = append(hooks, fn) }).
		Return()

	return session, func() {
		for _, fn := range hooks {
			fn()
		}
	}
}

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func addressPage(items ...entity.Address) *entity.Page[entity.Address] {
	return &entity.Page[entity.Address]{
		Items:      items,
		Pagination: &entity.Pagination{Page: 1, Limit: 10, Total: len(items), TotalPages: 1},
	}
}

func userPage(items ...entity.User) *entity.Page[entity.User] {
	return &entity.Page[entity.User]{Items: items}
}

func devicePage(items ...entity.Device) *entity.Page[entity.Device] {
	return &entity.Page[entity.Device]{Items: items}
}

func kyivAddress() entity.Address {
	return entity.Address{
		ID:        1,
		Address:   "Khreshchatyk 1",
		City:      "Kyiv",
		Latitude:  floatPtr(50.4501),
		Longitude: floatPtr(30.5234),
	}
}

func kyivAddressPtr() *entity.Address {
	a := kyivAddress()

	return &a
}
