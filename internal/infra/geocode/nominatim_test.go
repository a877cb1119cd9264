package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Geocoder: &config.GeocoderConfig{
		BaseURL:      server.URL,
		CountryCodes: "ua",
		UserAgent:    "portal-test",
		Timeout:      5 * time.Second,
	}}

	return NewNominatimGeocoder(cfg).(*nominatimGeocoder)
}

func TestNominatimGeocoder_Search(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Khreshchatyk", q.Get("q"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("addressdetails"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "ua", q.Get("countrycodes"))
		assert.Equal(t, "portal-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"display_name":"Khreshchatyk 1, Kyiv","lat":"50.4501","lon":"30.5234","address":{"city":"Kyiv"}},
			{"display_name":"Khreshchatyk, Boryspil","lat":"50.35","lon":"30.95","address":{"town":"Boryspil"}},
			{"display_name":"Khreshchatyk, Hatne","lat":"50.35","lon":"30.42","address":{"village":"Hatne","municipality":"Fastiv"}},
			{"display_name":"Khreshchatyk, Fastiv","lat":"50.07","lon":"29.91","address":{"municipality":"Fastiv"}},
			{"display_name":"Khreshchatyk street","lat":"48.0","lon":"37.8","address":{}},
			{"display_name":"Sixth","lat":"1","lon":"1","address":{}}
		]`)
	})

	candidates, err := geocoder.Search(context.Background(), "Khreshchatyk", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 5)

	assert.Equal(t, "Kyiv", candidates[0].City)
	assert.Equal(t, "50.4501", candidates[0].Latitude)
	assert.Equal(t, "Boryspil", candidates[1].City)
	assert.Equal(t, "Hatne", candidates[2].City)
	assert.Equal(t, "Fastiv", candidates[3].City)
	assert.Empty(t, candidates[4].City)
}

func TestNominatimGeocoder_Search_ErrorStatus(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := geocoder.Search(context.Background(), "Kyiv", 5)
	assert.Error(t, err)
}
