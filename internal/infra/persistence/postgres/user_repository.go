package postgres

import (
	"context"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUsersWithOrigin retrieves all users that have an origin coordinate.
// This is the candidate pool for nearby targeting, so the full table scan is
// bounded by the share of users who shared a location.
func (repo *userRepository) FindUsersWithOrigin(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("origin_latitude IS NOT NULL AND origin_longitude IS NOT NULL").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users with origin")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateUserOrigin sets the user's origin coordinate.
func (repo *userRepository) UpdateUserOrigin(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"origin_latitude":  latitude,
			"origin_longitude": longitude,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user origin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		DisplayName:     data.DisplayName,
		OriginLatitude:  data.OriginLatitude,
		OriginLongitude: data.OriginLongitude,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
