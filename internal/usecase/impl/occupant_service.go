package impl

import (
	"context"
	"log/slog"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// occupantService implements the OccupantUsecase interface.
type occupantService struct {
	deviceRepo  repository.DeviceRepository
	userRepo    repository.UserRepository
	deviceLimit int
	userLimit   int
	logger      *slog.Logger
}

// OccupantServiceParams holds dependencies for OccupantService, injected by Fx.
type OccupantServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	UserRepo   repository.UserRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOccupantService is the constructor for occupantService.
func NewOccupantService(params OccupantServiceParams) usecase.OccupantUsecase {
	deviceLimit, userLimit := 100, 100
	if params.Config != nil && params.Config.Resolver != nil {
		deviceLimit = params.Config.Resolver.DeviceLimit
		userLimit = params.Config.Resolver.UserLimit
	}

	return &occupantService{
		deviceRepo:  params.DeviceRepo,
		userRepo:    params.UserRepo,
		deviceLimit: deviceLimit,
		userLimit:   userLimit,
		logger:      params.Logger,
	}
}

func (srv *occupantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveOccupants joins address → devices → subscriptions → users on the client side.
//
// The reads run strictly one after another: the device listing, then each matching
// device's details in listing order, then the user listing. A device whose details
// cannot be read is skipped and reported in SkippedDevices. When no device matches or
// no subscriber is found the user listing is not requested.
func (srv *occupantService) ResolveOccupants(ctx context.Context, addressID int64) (*usecase.OccupantsResult, error) {
	logger := srv.log(ctx).With(slog.Int64("address_id", addressID))
	result := &usecase.OccupantsResult{AddressID: addressID, Users: []entity.User{}}

	// 1. Devices installed at the address
	devices, err := srv.deviceRepo.ListDevices(ctx, repository.ListQuery{Page: 1, Limit: srv.deviceLimit})
	if err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	var matching []entity.Device
	for _, device := range devices.Items {
		if device.AtAddress(addressID) {
			matching = append(matching, device)
		}
	}
	if len(matching) == 0 {
		logger.Debug("No devices at address")

		return result, nil
	}

	// 2. Subscribers of each device, in order of first appearance
	var subscriberIDs []int64
	seen := make(map[int64]struct{})
	for _, device := range matching {
		detail, err := srv.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			logger.Warn("Skipping device whose details could not be read",
				slog.Int64("device_id", device.ID),
				slog.Any("error", err))
			result.SkippedDevices = append(result.SkippedDevices, device.ID)

			continue
		}

		for _, userID := range detail.SubscriberIDs() {
			if _, ok := seen[userID]; ok {
				continue
			}
			seen[userID] = struct{}{}
			subscriberIDs = append(subscriberIDs, userID)
		}
	}
	if len(subscriberIDs) == 0 {
		logger.Debug("No subscribers at address", slog.Int("devices", len(matching)))

		return result, nil
	}

	// 3. Users in the subscriber set
	users, err := srv.userRepo.ListUsers(ctx, repository.ListQuery{Page: 1, Limit: srv.userLimit})
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	for _, user := range users.Items {
		if _, ok := seen[user.ID]; ok {
			result.Users = append(result.Users, user)
		}
	}

	logger.Info("Resolved address occupants",
		slog.Int("devices", len(matching)),
		slog.Int("subscribers", len(subscriberIDs)),
		slog.Int("users", len(result.Users)),
		slog.Int("skipped_devices", len(result.SkippedDevices)))

	return result, nil
}
