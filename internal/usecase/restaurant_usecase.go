// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput represents the owner-supplied fields of a restaurant
type RestaurantInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// RestaurantUsecase defines the interface for restaurant management use cases
type RestaurantUsecase interface {
	// CreateRestaurant creates a restaurant and geocodes its address.
	// Geocoding failure is soft: the restaurant is created without coordinates.
	CreateRestaurant(ctx context.Context, ownerID uuid.UUID, input *RestaurantInput) (*entity.Restaurant, error)

	// GetRestaurant retrieves a restaurant by ID
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// GetOwnerRestaurants retrieves all restaurants managed by an owner
	GetOwnerRestaurants(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)

	// UpdateRestaurant updates a restaurant; an address change triggers
	// re-geocoding, and a failed re-geocode clears stale coordinates
	UpdateRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID, input *RestaurantInput) (*entity.Restaurant, error)

	// RefreshCoordinates retries geocoding for a restaurant whose address
	// never resolved
	RefreshCoordinates(ctx context.Context, ownerID, restaurantID uuid.UUID) (*entity.Restaurant, error)
}
