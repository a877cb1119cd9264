package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	logger := newDiscardLogger()
	service := NewCatalogService(CatalogServiceParams{
		Addresses: NewSlice[entity.Address]("addresses", addressRepo.ListAddresses, logger),
		Users:     NewSlice[entity.User]("users", userRepo.ListUsers, logger),
		Devices:   NewSlice[entity.Device]("devices", deviceRepo.ListDevices, logger),
		Logger:    logger,
	})
	ctx := context.Background()

	t.Run("addresses", func(t *testing.T) {
		addressRepo.EXPECT().ListAddresses(ctx, repository.ListQuery{Page: 3, Limit: 25}).Return(addressPage(kyivAddress()), nil)

		state, err := service.ListAddresses(ctx, repository.ListQuery{Page: 3, Limit: 25})
		require.NoError(t, err)
		assert.Len(t, state.Items, 1)
	})

	t.Run("users filtered by role", func(t *testing.T) {
		userRepo.EXPECT().
			ListUsers(ctx, repository.ListQuery{Page: 1, Limit: 10, Role: entity.RoleAdmin}).
			Return(userPage(entity.User{ID: 2, Role: entity.RoleAdmin}), nil)

		state, err := service.ListUsers(ctx, repository.ListQuery{Role: entity.RoleAdmin})
		require.NoError(t, err)
		assert.Len(t, state.Items, 1)
	})

	t.Run("devices ignore role and surface errors", func(t *testing.T) {
		deviceRepo.EXPECT().
			ListDevices(ctx, repository.ListQuery{Page: 1, Limit: 10}).
			Return(nil, domainerrors.ErrSessionExpired)

		_, err := service.ListDevices(ctx, repository.ListQuery{Role: entity.RoleAdmin})
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}

func TestCatalogService_SupersededFetchReturnsCurrentState(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := newDiscardLogger()
	users := NewSlice[entity.User]("users", userRepo.ListUsers, logger)
	service := NewCatalogService(CatalogServiceParams{Users: users, Logger: logger})
	ctx := context.Background()

	userRepo.EXPECT().
		ListUsers(ctx, repository.ListQuery{Page: 1, Limit: 10}).
		RunAndReturn(func(ctx context.Context, _ repository.ListQuery) (*entity.Page[entity.User], error) {
			_, err := users.Fetch(ctx, repository.ListQuery{Page: 2})
			require.NoError(t, err)

			return userPage(entity.User{ID: 1}), nil
		})
	userRepo.EXPECT().
		ListUsers(ctx, repository.ListQuery{Page: 2, Limit: 10}).
		Return(userPage(entity.User{ID: 2}), nil)

	state, err := service.ListUsers(ctx, repository.ListQuery{})
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].ID)
}
