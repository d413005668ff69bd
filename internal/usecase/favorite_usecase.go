package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for favorite management use cases
type FavoriteUsecase interface {
	// FavoriteRestaurant creates or reactivates a favorite
	FavoriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantFavorite, error)

	// UnfavoriteRestaurant deactivates a favorite
	UnfavoriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error

	// GetUserFavorites retrieves all active favorites of a user
	GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantFavorite, error)

	// GenerateFavoriteQR generates a printable QR code for the restaurant,
	// owner-scoped
	GenerateFavoriteQR(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]byte, error)

	// ProcessQRFavorite favorites the restaurant embedded in scanned QR data
	ProcessQRFavorite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.RestaurantFavorite, error)
}
