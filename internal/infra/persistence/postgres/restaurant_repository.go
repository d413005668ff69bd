// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// CreateRestaurant persists a new restaurant.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindRestaurantByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindRestaurantsByOwner retrieves all restaurants managed by an owner.
func (repo *restaurantRepository) FindRestaurantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by owner")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// UpdateRestaurant persists changes to an existing restaurant. Coordinates are
// written even when nil so a failed re-geocode clears stale values.
func (repo *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Select("name", "street", "city", "state", "zip_code", "country",
			"latitude", "longitude", "formatted_address").
		Updates(fromRestaurantDomain(restaurant))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Street:           data.Street,
		City:             data.City,
		State:            data.State,
		ZipCode:          data.ZipCode,
		Country:          data.Country,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		FormattedAddress: data.FormattedAddress,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Street:           data.Street,
		City:             data.City,
		State:            data.State,
		ZipCode:          data.ZipCode,
		Country:          data.Country,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		FormattedAddress: data.FormattedAddress,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
