package usecase

import "context"

// ExportFormat selects the document format of an address export.
type ExportFormat string

const (
	ExportXLSX    ExportFormat = "xlsx"
	ExportGeoJSON ExportFormat = "geojson"
)

// Document is a rendered download.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportUsecase renders addresses for use outside the console.
type ExportUsecase interface {
	// MapLink returns the external map deep link of an address.
	MapLink(ctx context.Context, addressID int64) (string, error)

	// MapQRCode returns the map deep link rendered as a PNG QR code.
	MapQRCode(ctx context.Context, addressID int64) ([]byte, error)

	// ExportAddresses renders every address in the requested format.
	ExportAddresses(ctx context.Context, format ExportFormat) (*Document, error)
}
