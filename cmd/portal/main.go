package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/api"
	apimiddleware "portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/router/handler"
	backend "portal/internal/infra/api"
	"portal/internal/infra/auth"
	"portal/internal/infra/export"
	"portal/internal/infra/geocode"
	logs "portal/internal/infra/log"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/session"
	"portal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectSession(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectSession() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			auth.NewTokenInspector,
			session.NewManager,
			session.AsSessionContext,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			backend.NewAuthRepository,
			backend.NewAddressRepository,
			backend.NewUserRepository,
			backend.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewNominatimGeocoder,
			qrcode.NewQRCodeService,
			fx.Annotate(
				export.NewXLSXExporter,
				fx.ResultTags(`name:"xlsx"`),
			),
			fx.Annotate(
				export.NewGeoJSONExporter,
				fx.ResultTags(`name:"geojson"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressSlice,
			impl.NewUserSlice,
			impl.NewDeviceSlice,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewAddressService,
			impl.NewOccupantService,
			impl.NewGeocodeService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAddressHandler,
			handler.NewCatalogHandler,
			handler.NewExportHandler,
			handler.NewGeocodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
