// Package service defines interfaces for infrastructure-backed domain services.
package service

import (
	"context"
	"errors"
)

// ErrAddressNotFound is the soft-failure result of geocoding: the provider
// returned zero results, was unreachable, timed out, or is not configured.
// Callers degrade (a restaurant simply stays without coordinates) instead of
// surfacing this to the user as an exception.
var ErrAddressNotFound = errors.New("address could not be geocoded")

// GeocodeResult is a successfully resolved address.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`          // Latitude of the first provider result.
	Longitude        float64 `json:"longitude"`         // Longitude of the first provider result.
	FormattedAddress string  `json:"formatted_address"` // Canonical address string from the provider.
}

// Geocoder resolves a free-text address to coordinates via an external
// provider. One outbound HTTP call per invocation, no retry, no caching.
type Geocoder interface {
	// Geocode resolves the address. Empty or whitespace-only input is a
	// caller error and returns ErrAddressNotFound without a provider call.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}
