package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nearbite/internal/delivery/context"
	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	geocoder       service.Geocoder
	logger         *slog.Logger
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		geocoder:       geocoder,
		logger:         logger,
	}
}

// CreateRestaurant creates a restaurant and geocodes its address. A geocoding
// miss is not an error: the restaurant is created without coordinates and can
// still broadcast to its favoriters.
func (s *restaurantService) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	restaurant := &entity.Restaurant{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(input.Name),
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Country: input.Country,
	}

	s.geocodeInPlace(ctx, restaurant)

	if err := s.restaurantRepo.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// GetRestaurant retrieves a restaurant by ID.
func (s *restaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	return restaurant, nil
}

// GetOwnerRestaurants retrieves all restaurants managed by an owner.
func (s *restaurantService) GetOwnerRestaurants(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	return s.restaurantRepo.FindRestaurantsByOwner(ctx, ownerID)
}

// UpdateRestaurant updates a restaurant. An address change re-geocodes; when
// the new address does not resolve, stale coordinates are cleared so nearby
// targeting never uses the old location.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := s.ownedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	previousAddress := restaurant.FullAddress()

	restaurant.Name = strings.TrimSpace(input.Name)
	restaurant.Street = input.Street
	restaurant.City = input.City
	restaurant.State = input.State
	restaurant.ZipCode = input.ZipCode
	restaurant.Country = input.Country

	if restaurant.FullAddress() != previousAddress {
		restaurant.Latitude = nil
		restaurant.Longitude = nil
		restaurant.FormattedAddress = ""
		s.geocodeInPlace(ctx, restaurant)
	}

	if err := s.restaurantRepo.UpdateRestaurant(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	return restaurant, nil
}

// RefreshCoordinates retries geocoding for a restaurant whose address never
// resolved.
func (s *restaurantService) RefreshCoordinates(ctx context.Context, ownerID, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.ownedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	s.geocodeInPlace(ctx, restaurant)

	if err := s.restaurantRepo.UpdateRestaurant(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	return restaurant, nil
}

// geocodeInPlace resolves the restaurant's address and fills the coordinate
// fields. Every geocoder failure is a soft miss logged at warn level.
func (s *restaurantService) geocodeInPlace(ctx context.Context, restaurant *entity.Restaurant) {
	address := restaurant.FullAddress()
	if address == "" {
		return
	}

	result, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("Geocoding failed, restaurant stays without coordinates",
			slog.String("restaurant_name", restaurant.Name),
			slog.String("error", err.Error()),
		)

		return
	}

	restaurant.Latitude = &result.Latitude
	restaurant.Longitude = &result.Longitude
	restaurant.FormattedAddress = result.FormattedAddress
}

// ownedRestaurant loads a restaurant and verifies the caller manages it.
func (s *restaurantService) ownedRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID) (*entity.Restaurant, error) {
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

	return restaurant, nil
}
