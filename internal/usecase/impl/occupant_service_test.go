package impl

import (
	"context"
	"errors"
	"testing"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolverQuery = repository.ListQuery{Page: 1, Limit: 100}

func newOccupantFixture(t *testing.T) (*mockRepo.MockDeviceRepository, *mockRepo.MockUserRepository, usecase.OccupantUsecase) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewOccupantService(OccupantServiceParams{
		DeviceRepo: deviceRepo,
		UserRepo:   userRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return deviceRepo, userRepo, service
}

func TestOccupantService_ResolveOccupants(t *testing.T) {
	deviceRepo, userRepo, service := newOccupantFixture(t)
	ctx := context.Background()

	deviceRepo.EXPECT().ListDevices(ctx, resolverQuery).Return(devicePage(
		entity.Device{ID: 10, AddressID: int64Ptr(1)},
		entity.Device{ID: 11, AddressID: int64Ptr(2)},
		entity.Device{ID: 12, AddressID: int64Ptr(1)},
		entity.Device{ID: 13},
	), nil)
	deviceRepo.EXPECT().FindDeviceByID(ctx, int64(10)).Return(&entity.Device{
		ID:            10,
		Subscriptions: []entity.Subscription{{UserID: 3}, {UserID: 4}},
	}, nil)
	deviceRepo.EXPECT().FindDeviceByID(ctx, int64(12)).Return(&entity.Device{
		ID:            12,
		Subscriptions: []entity.Subscription{{UserID: 4}, {UserID: 5}},
	}, nil)
	userRepo.EXPECT().ListUsers(ctx, resolverQuery).Return(userPage(
		entity.User{ID: 1},
		entity.User{ID: 3},
		entity.User{ID: 4},
		entity.User{ID: 5},
	), nil)

	result, err := service.ResolveOccupants(ctx, 1)
	require.NoError(t, err)

	ids := make([]int64, 0, len(result.Users))
	for _, user := range result.Users {
		ids = append(ids, user.ID)
	}
	assert.Equal(t, []int64{3, 4, 5}, ids)
	assert.Empty(t, result.SkippedDevices)
}

func TestOccupantService_ResolveOccupants_SkipsFailedDevice(t *testing.T) {
	deviceRepo, userRepo, service := newOccupantFixture(t)
	ctx := context.Background()

	deviceRepo.EXPECT().ListDevices(ctx, resolverQuery).Return(devicePage(
		entity.Device{ID: 10, AddressID: int64Ptr(1)},
		entity.Device{ID: 12, AddressID: int64Ptr(1)},
	), nil)
	deviceRepo.EXPECT().FindDeviceByID(ctx, int64(10)).Return(nil, errors.New("gateway timeout"))
	deviceRepo.EXPECT().FindDeviceByID(ctx, int64(12)).Return(&entity.Device{
		ID:            12,
		Subscriptions: []entity.Subscription{{UserID: 5}},
	}, nil)
	userRepo.EXPECT().ListUsers(ctx, resolverQuery).Return(userPage(entity.User{ID: 5}), nil)

	result, err := service.ResolveOccupants(ctx, 1)
	require.NoError(t, err)

	require.Len(t, result.Users, 1)
	assert.Equal(t, int64(5), result.Users[0].ID)
	assert.Equal(t, []int64{10}, result.SkippedDevices)
}

func TestOccupantService_ResolveOccupants_NoDevicesSkipsUserFetch(t *testing.T) {
	deviceRepo, _, service := newOccupantFixture(t)
	ctx := context.Background()

	deviceRepo.EXPECT().ListDevices(ctx, resolverQuery).Return(devicePage(
		entity.Device{ID: 11, AddressID: int64Ptr(2)},
	), nil)

	result, err := service.ResolveOccupants(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Users)
}

func TestOccupantService_ResolveOccupants_NoSubscribersSkipsUserFetch(t *testing.T) {
	deviceRepo, _, service := newOccupantFixture(t)
	ctx := context.Background()

	deviceRepo.EXPECT().ListDevices(ctx, resolverQuery).Return(devicePage(
		entity.Device{ID: 10, AddressID: int64Ptr(1)},
	), nil)
	deviceRepo.EXPECT().FindDeviceByID(ctx, int64(10)).Return(&entity.Device{ID: 10}, nil)

	result, err := service.ResolveOccupants(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Users)
}

func TestOccupantService_ResolveOccupants_DeviceListingFails(t *testing.T) {
	deviceRepo, _, service := newOccupantFixture(t)
	ctx := context.Background()

	listErr := errors.New("unreachable")
	deviceRepo.EXPECT().ListDevices(ctx, resolverQuery).Return(nil, listErr)

	_, err := service.ResolveOccupants(ctx, 1)
	assert.ErrorIs(t, err, listErr)
}
