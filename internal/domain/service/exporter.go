package service

import "portal/internal/domain/entity"

// AddressExporter renders an address table into a downloadable document.
type AddressExporter interface {
	// ContentType is the MIME type of the rendered document.
	ContentType() string

	// Export renders the addresses.
	Export(addresses []entity.Address) ([]byte, error)
}
