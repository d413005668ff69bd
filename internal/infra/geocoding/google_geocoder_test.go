package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeocoderConfig(endpoint string) *config.Config {
	return &config.Config{
		Geocoding: &config.GeocodingConfig{
			APIKey:   "test-key",
			Endpoint: endpoint,
			Timeout:  2 * time.Second,
		},
	}
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "101 Taipei Rd", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "101 Taipei Rd, Xinyi District, Taipei City, Taiwan",
				"geometry": {"location": {"lat": 25.033964, "lng": 121.564468}}
			}]
		}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	result, err := geocoder.Geocode(context.Background(), "101 Taipei Rd")
	require.NoError(t, err)
	assert.InDelta(t, 25.033964, result.Latitude, 1e-9)
	assert.InDelta(t, 121.564468, result.Longitude, 1e-9)
	assert.Equal(t, "101 Taipei Rd, Xinyi District, Taipei City, Taiwan", result.FormattedAddress)
}

func TestGoogleGeocoder_Geocode_FirstResultWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "First", "geometry": {"location": {"lat": 1.0, "lng": 2.0}}},
				{"formatted_address": "Second", "geometry": {"location": {"lat": 3.0, "lng": 4.0}}}
			]
		}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	result, err := geocoder.Geocode(context.Background(), "ambiguous address")
	require.NoError(t, err)
	assert.Equal(t, "First", result.FormattedAddress)
}

func TestGoogleGeocoder_Geocode_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestGoogleGeocoder_Geocode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "somewhere")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestGoogleGeocoder_Geocode_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed before the call so the dial fails.

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "somewhere")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestGoogleGeocoder_Geocode_EmptyAddress(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(newGeocoderConfig(server.URL), newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
	assert.False(t, called, "empty address must not reach the provider")
}

func TestGoogleGeocoder_Geocode_MissingAPIKey(t *testing.T) {
	geocoder := NewGoogleGeocoder(&config.Config{}, newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "101 Taipei Rd")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}
