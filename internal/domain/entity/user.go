// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an app user on the customer side.
// The origin coordinate is the user's fixed home location maintained by the
// profile subsystem; it is the candidate pool for nearby targeting and is
// nil for users who never shared a location.
type User struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the user.
	DisplayName     string    `json:"display_name"`     // The public display name.
	OriginLatitude  *float64  `json:"origin_latitude"`  // Latitude of the user's origin location, nil when unknown.
	OriginLongitude *float64  `json:"origin_longitude"` // Longitude of the user's origin location, nil when unknown.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}

// HasOrigin reports whether the user has a resolvable origin coordinate.
func (u *User) HasOrigin() bool {
	return u.OriginLatitude != nil && u.OriginLongitude != nil
}
