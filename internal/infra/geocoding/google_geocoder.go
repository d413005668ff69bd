// Package geocoding implements the Geocoder domain service against the
// Google Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout  = 10 * time.Second
)

type googleGeocoder struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// geocodeResponse mirrors the subset of the Google Geocoding API response we read.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Geocoding API.
// A missing API key yields a geocoder whose every lookup soft-fails with
// ErrAddressNotFound, so address resolution degrades instead of blocking.
func NewGoogleGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	geocoder := &googleGeocoder{
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	if cfg.Geocoding != nil {
		geocoder.apiKey = cfg.Geocoding.APIKey
		if cfg.Geocoding.Endpoint != "" {
			geocoder.endpoint = cfg.Geocoding.Endpoint
		}
		if cfg.Geocoding.Timeout > 0 {
			geocoder.httpClient.Timeout = cfg.Geocoding.Timeout
		}
	}

	if geocoder.apiKey == "" {
		logger.Warn("Geocoding API key not configured, address resolution will be skipped")
	}

	return geocoder
}

// Geocode resolves a free-text address to coordinates. Provider failures of
// any kind (unreachable, non-200, zero results) collapse into
// ErrAddressNotFound so callers treat them uniformly as a soft miss.
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, service.ErrAddressNotFound
	}

	if g.apiKey == "" {
		return nil, service.ErrAddressNotFound
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("Geocoding request failed",
			slog.String("error", err.Error()),
		)

		return nil, service.ErrAddressNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("Geocoding provider returned non-OK status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, service.ErrAddressNotFound
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.logger.Warn("Geocoding response decode failed",
			slog.String("error", err.Error()),
		)

		return nil, service.ErrAddressNotFound
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		g.logger.Debug("Geocoding returned no results",
			slog.String("status", body.Status),
		)

		return nil, service.ErrAddressNotFound
	}

	// First result wins; the provider orders by relevance.
	first := body.Results[0]

	return &service.GeocodeResult{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}, nil
}
