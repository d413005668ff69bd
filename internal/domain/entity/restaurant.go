// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a restaurant managed by an owner.
// Latitude/Longitude are nil until the street address has been geocoded
// successfully; a restaurant without coordinates can still broadcast to its
// favoriters, it just cannot target nearby users.
type Restaurant struct {
	ID               uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the restaurant.
	OwnerID          uuid.UUID `json:"owner_id"`          // The ID of the owner managing this restaurant.
	Name             string    `json:"name"`              // The display name of the restaurant.
	Street           string    `json:"street"`            // Street part of the address.
	City             string    `json:"city"`              // City part of the address.
	State            string    `json:"state"`             // State/province part of the address.
	ZipCode          string    `json:"zip_code"`          // Postal code part of the address.
	Country          string    `json:"country"`           // Country part of the address.
	Latitude         *float64  `json:"latitude"`          // Geocoded latitude, nil when geocoding has not succeeded.
	Longitude        *float64  `json:"longitude"`         // Geocoded longitude, nil when geocoding has not succeeded.
	FormattedAddress string    `json:"formatted_address"` // Canonical address returned by the geocoding provider.
	CreatedAt        time.Time `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt        time.Time `json:"updated_at"`        // Timestamp of the last modification.
}

// FullAddress joins the address parts into the free-text form sent to the
// geocoding provider. Empty parts are skipped.
func (r *Restaurant) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{r.Street, r.City, r.State, r.ZipCode, r.Country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// HasCoordinates reports whether the restaurant has been geocoded.
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
