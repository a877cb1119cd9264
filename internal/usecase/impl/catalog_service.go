package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface on top of the three slices.
type catalogService struct {
	addresses *Slice[entity.Address]
	users     *Slice[entity.User]
	devices   *Slice[entity.Device]
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Addresses *Slice[entity.Address]
	Users     *Slice[entity.User]
	Devices   *Slice[entity.Device]
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		addresses: params.Addresses,
		users:     params.Users,
		devices:   params.Devices,
		logger:    params.Logger,
	}
}

func (srv *catalogService) ListAddresses(ctx context.Context, query repository.ListQuery) (*usecase.SliceState[entity.Address], error) {
	return fetchSlice(ctx, srv.log(ctx), srv.addresses, query)
}

func (srv *catalogService) ListUsers(ctx context.Context, query repository.ListQuery) (*usecase.SliceState[entity.User], error) {
	return fetchSlice(ctx, srv.log(ctx), srv.users, query)
}

func (srv *catalogService) ListDevices(ctx context.Context, query repository.ListQuery) (*usecase.SliceState[entity.Device], error) {
	query.Role = ""

	return fetchSlice(ctx, srv.log(ctx), srv.devices, query)
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// fetchSlice fetches and returns the slice state. A superseded fetch is not an error:
// the caller gets the state the newer request produced or is producing.
func fetchSlice[T any](ctx context.Context, logger *slog.Logger, slice *Slice[T], query repository.ListQuery) (*usecase.SliceState[T], error) {
	state, err := slice.Fetch(ctx, query)
	if errors.Is(err, ErrSuperseded) {
		logger.Debug("Fetch superseded, returning current state")

		return &state, nil
	}
	if err != nil {
		return nil, err
	}

	return &state, nil
}
