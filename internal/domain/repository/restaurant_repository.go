// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// CreateRestaurant persists a new restaurant.
	CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error

	// FindRestaurantByID retrieves a restaurant by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindRestaurantsByOwner retrieves all restaurants managed by an owner.
	FindRestaurantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)

	// UpdateRestaurant persists changes to an existing restaurant, including
	// clearing coordinates when geocoding of a new address failed.
	UpdateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error
}
