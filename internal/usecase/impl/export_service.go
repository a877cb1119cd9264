package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

const (
	exportPageLimit = 100
	exportMaxPages  = 50
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	addressRepo repository.AddressRepository
	addresses   *Slice[entity.Address]
	qrcode      service.QRCodeService
	exporters   map[usecase.ExportFormat]service.AddressExporter
	mapBaseURL  string
	now         func() time.Time
	logger      *slog.Logger
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	AddressRepo     repository.AddressRepository
	Addresses       *Slice[entity.Address]
	QRCode          service.QRCodeService
	XLSXExporter    service.AddressExporter `name:"xlsx"`
	GeoJSONExporter service.AddressExporter `name:"geojson"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		addressRepo: params.AddressRepo,
		addresses:   params.Addresses,
		qrcode:      params.QRCode,
		exporters: map[usecase.ExportFormat]service.AddressExporter{
			usecase.ExportXLSX:    params.XLSXExporter,
			usecase.ExportGeoJSON: params.GeoJSONExporter,
		},
		mapBaseURL: params.Config.MapLink.BaseURL,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MapLink builds "{base}?api=1&query=<lat>,<lng>" for an address with both coordinates.
func (srv *exportService) MapLink(ctx context.Context, addressID int64) (string, error) {
	address, err := srv.address(ctx, addressID)
	if err != nil {
		return "", err
	}

	point, ok := address.Location()
	if !ok {
		return "", domainerrors.ErrCoordinatesMissing
	}

	separator := "?"
	if strings.Contains(srv.mapBaseURL, "?") {
		separator = "&"
	}

	return srv.mapBaseURL + separator + "api=1&query=" +
		strconv.FormatFloat(point.Lat(), 'f', -1, 64) + "," +
		strconv.FormatFloat(point.Lon(), 'f', -1, 64), nil
}

// MapQRCode renders the map link as a PNG.
func (srv *exportService) MapQRCode(ctx context.Context, addressID int64) ([]byte, error) {
	link, err := srv.MapLink(ctx, addressID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateLinkQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "generate map QR code")
	}

	return png, nil
}

// ExportAddresses reads every page of addresses and renders them.
func (srv *exportService) ExportAddresses(ctx context.Context, format usecase.ExportFormat) (*usecase.Document, error) {
	exporter, ok := srv.exporters[format]
	if !ok || exporter == nil {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "export format %q", format)
	}

	addresses, err := srv.allAddresses(ctx)
	if err != nil {
		return nil, err
	}

	content, err := exporter.Export(addresses)
	if err != nil {
		return nil, errors.Wrap(err, "render export")
	}

	srv.log(ctx).Info("Addresses exported", slog.String("format", string(format)), slog.Int("count", len(addresses)))

	return &usecase.Document{
		Filename:    "addresses-" + srv.now().Format("20060102-150405") + "." + string(format),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}

func (srv *exportService) allAddresses(ctx context.Context) ([]entity.Address, error) {
	var all []entity.Address

	for page := 1; page <= exportMaxPages; page++ {
		result, err := srv.addressRepo.ListAddresses(ctx, repository.ListQuery{Page: page, Limit: exportPageLimit})
		if err != nil {
			return nil, errors.Wrapf(err, "list addresses page %d", page)
		}
		all = append(all, result.Items...)

		if len(result.Items) < exportPageLimit {
			break
		}
		if result.Pagination != nil && result.Pagination.TotalPages > 0 && page >= result.Pagination.TotalPages {
			break
		}
	}

	return all, nil
}

// address returns the cached list entry, else reads it from the backend.
func (srv *exportService) address(ctx context.Context, id int64) (*entity.Address, error) {
	if cached, ok := srv.addresses.Find(byAddressID(id)); ok {
		return &cached, nil
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, id)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "load address")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load address")
	}

	return address, nil
}
