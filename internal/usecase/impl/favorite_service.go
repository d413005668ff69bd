package impl

import (
	"context"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
	qrService      service.QRCodeService
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	restaurantRepo repository.RestaurantRepository,
	qrService service.QRCodeService,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
		qrService:      qrService,
	}
}

// FavoriteRestaurant creates a favorite, or reactivates a previously
// deactivated one so the pair keeps its original row.
func (s *favoriteService) FavoriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantFavorite, error) {
	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	existing, err := s.favoriteRepo.FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID)
	if err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return existing, nil
		}

		if err := s.favoriteRepo.UpdateFavoriteActive(ctx, existing.ID, true); err != nil {
			return nil, err
		}
		existing.IsActive = true

		return existing, nil
	}

	favorite := &entity.RestaurantFavorite{
		UserID:       userID,
		RestaurantID: restaurantID,
		IsActive:     true,
	}

	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// UnfavoriteRestaurant deactivates a favorite.
func (s *favoriteService) UnfavoriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error {
	favorite, err := s.favoriteRepo.FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return err
	}

	if !favorite.IsActive {
		return nil
	}

	return s.favoriteRepo.UpdateFavoriteActive(ctx, favorite.ID, false)
}

// GetUserFavorites retrieves all active favorites of a user.
func (s *favoriteService) GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantFavorite, error) {
	return s.favoriteRepo.FindFavoritesByUser(ctx, userID)
}

// GenerateFavoriteQR generates a printable QR code for the restaurant,
// owner-scoped.
func (s *favoriteService) GenerateFavoriteQR(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]byte, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	if restaurant.OwnerID != ownerID {
		return nil, domainerrors.ErrRestaurantOwnershipViolation
	}

	return s.qrService.GenerateFavoriteQR(restaurantID)
}

// ProcessQRFavorite favorites the restaurant embedded in scanned QR data.
func (s *favoriteService) ProcessQRFavorite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.RestaurantFavorite, error) {
	restaurantID, err := s.qrService.ParseFavoriteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.FavoriteRestaurant(ctx, userID, restaurantID)
}
