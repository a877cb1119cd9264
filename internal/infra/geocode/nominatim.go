// Package geocode implements address search against a Nominatim-compatible endpoint.
package geocode

import (
	"context"
	"strconv"
	"strings"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/go-resty/resty/v2"
)

type nominatimPlace struct {
	DisplayName string            `json:"display_name"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	Address     map[string]string `json:"address"`
}

type nominatimGeocoder struct {
	http         *resty.Client
	countryCodes string
}

// NewNominatimGeocoder creates a Geocoder for the configured search endpoint.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Geocoder.BaseURL, "/")).
		SetTimeout(cfg.Geocoder.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if cfg.Geocoder.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.Geocoder.UserAgent)
	}

	return &nominatimGeocoder{
		http:         httpClient,
		countryCodes: cfg.Geocoder.CountryCodes,
	}
}

// Search issues one lookup restricted to the configured country scope.
func (g *nominatimGeocoder) Search(ctx context.Context, query string, limit int) ([]entity.GeocodeCandidate, error) {
	params := map[string]string{
		"q":              query,
		"format":         "json",
		"addressdetails": "1",
		"limit":          strconv.Itoa(limit),
		"countrycodes":   g.countryCodes,
	}

	var places []nominatimPlace
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&places).
		Get("/search")
	if err != nil {
		return nil, errors.Wrap(err, "geocoder request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode())
	}

	if len(places) > limit {
		places = places[:limit]
	}

	candidates := make([]entity.GeocodeCandidate, 0, len(places))
	for _, place := range places {
		candidates = append(candidates, entity.GeocodeCandidate{
			DisplayName: place.DisplayName,
			Latitude:    place.Lat,
			Longitude:   place.Lon,
			City:        cityOf(place.Address),
		})
	}

	return candidates, nil
}

// cityOf picks the best-effort locality name.
func cityOf(address map[string]string) string {
	for _, key := range []string{"city", "town", "village", "municipality"} {
		if v := strings.TrimSpace(address[key]); v != "" {
			return v
		}
	}

	return ""
}
