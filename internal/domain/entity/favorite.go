// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantFavorite represents a user's favorite relationship with a
// restaurant. Favoriters receive every broadcast of the restaurant
// regardless of distance.
type RestaurantFavorite struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the favorite.
	UserID       uuid.UUID `json:"user_id"`       // The user who favorited.
	RestaurantID uuid.UUID `json:"restaurant_id"` // The favorited restaurant.
	IsActive     bool      `json:"is_active"`     // False after unfavoriting; re-favoriting reactivates the row.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the favorite was first created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}
