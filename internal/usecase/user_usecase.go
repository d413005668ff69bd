package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for the user-profile operations this
// subsystem owns. Account management lives in the external identity provider.
type UserUsecase interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUserOrigin sets the user's origin coordinate for future nearby
	// targeting. Existing recipient snapshots are unaffected.
	UpdateUserOrigin(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*entity.User, error)
}
