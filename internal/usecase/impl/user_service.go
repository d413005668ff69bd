package impl

import (
	"context"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/geo"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
	}
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return user, nil
}

// UpdateUserOrigin sets the user's origin coordinate. Only future broadcasts
// see the new location; past snapshots stay as resolved.
func (s *userService) UpdateUserOrigin(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*entity.User, error) {
	if !geo.ValidCoordinate(latitude, longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	if err := s.userRepo.UpdateUserOrigin(ctx, userID, latitude, longitude); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
