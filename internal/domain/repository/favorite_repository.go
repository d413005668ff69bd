package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when a (user, restaurant) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite relationship.
	CreateFavorite(ctx context.Context, favorite *entity.RestaurantFavorite) error

	// FindFavoriteByUserAndRestaurant retrieves a favorite by its pair key,
	// whether active or not.
	FindFavoriteByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantFavorite, error)

	// FindFavoritesByUser retrieves all active favorites of a user.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantFavorite, error)

	// FindFavoriterIDsByRestaurant retrieves the user ids of all active
	// favoriters of a restaurant. This is the favorite pool of the resolver.
	FindFavoriterIDsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error)

	// UpdateFavoriteActive activates or deactivates a favorite.
	UpdateFavoriteActive(ctx context.Context, id uuid.UUID, isActive bool) error
}
