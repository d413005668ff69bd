package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
// User records are owned by the profile subsystem; this repository only reads
// them for targeting, plus the single origin-coordinate write the app allows.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersWithOrigin retrieves all users that have an origin coordinate.
	// This is the candidate pool for nearby targeting.
	FindUsersWithOrigin(ctx context.Context) ([]*entity.User, error)

	// UpdateUserOrigin sets the user's origin coordinate. It affects future
	// broadcasts only; existing recipient snapshots are immutable.
	UpdateUserOrigin(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
}
