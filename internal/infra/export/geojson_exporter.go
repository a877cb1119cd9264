package export

import (
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/paulmach/orb/geojson"
)

// ContentTypeGeoJSON is the MIME type of GeoJSON exports.
const ContentTypeGeoJSON = "application/geo+json"

type geojsonExporter struct{}

// NewGeoJSONExporter creates an exporter producing a point FeatureCollection.
// Addresses without both coordinates are left out.
func NewGeoJSONExporter() service.AddressExporter {
	return &geojsonExporter{}
}

func (e *geojsonExporter) ContentType() string {
	return ContentTypeGeoJSON
}

func (e *geojsonExporter) Export(addresses []entity.Address) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for i := range addresses {
		a := &addresses[i]
		point, ok := a.Location()
		if !ok {
			continue
		}

		feature := geojson.NewFeature(point)
		feature.ID = a.ID
		feature.Properties["address"] = a.Address
		feature.Properties["city"] = a.City
		if a.HasManager() {
			feature.Properties["managerId"] = *a.ManagerID
		}
		if a.Manager != nil {
			feature.Properties["manager"] = a.Manager.Name
		}
		feature.Properties["devices"] = len(a.Devices)

		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal feature collection")
	}

	return data, nil
}
