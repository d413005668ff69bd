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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite persists a new favorite relationship.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.RestaurantFavorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("invalid user or restaurant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt
	favorite.UpdatedAt = favoriteM.UpdatedAt

	return nil
}

// FindFavoriteByUserAndRestaurant retrieves a favorite by its pair key,
// whether active or not.
func (repo *favoriteRepository) FindFavoriteByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantFavorite, error) {
	var favoriteM model.RestaurantFavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and restaurant")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoritesByUser retrieves all active favorites of a user.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantFavorite, error) {
	var favoriteModels []*model.RestaurantFavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.RestaurantFavorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// FindFavoriterIDsByRestaurant retrieves the user ids of all active
// favoriters of a restaurant.
func (repo *favoriteRepository) FindFavoriterIDsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantFavoriteModel{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favoriter IDs by restaurant")
	}

	return userIDs, nil
}

// UpdateFavoriteActive activates or deactivates a favorite.
func (repo *favoriteRepository) UpdateFavoriteActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantFavoriteModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update favorite status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM RestaurantFavoriteModel to a domain RestaurantFavorite entity.
func toFavoriteDomain(data *model.RestaurantFavoriteModel) *entity.RestaurantFavorite {
	if data == nil {
		return nil
	}

	return &entity.RestaurantFavorite{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromFavoriteDomain converts a domain RestaurantFavorite entity to a GORM RestaurantFavoriteModel.
func fromFavoriteDomain(data *entity.RestaurantFavorite) *model.RestaurantFavoriteModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantFavoriteModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
