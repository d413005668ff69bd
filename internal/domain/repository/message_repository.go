package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for restaurant-message database operations.
type MessageRepository interface {
	// CreateMessage persists a new restaurant message.
	CreateMessage(ctx context.Context, message *entity.RestaurantMessage) error

	// FindMessageByID retrieves a message by its unique ID.
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantMessage, error)

	// FindMessagesByRestaurant retrieves all messages of a restaurant, newest first.
	FindMessagesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantMessage, error)

	// UpdateMessage persists edits to title, body, radius, type, offer details
	// and the active flag. It never touches the recipient snapshot.
	UpdateMessage(ctx context.Context, message *entity.RestaurantMessage) error

	// UpdateMessageActive flips the hard is_active toggle without touching expires_at.
	UpdateMessageActive(ctx context.Context, id uuid.UUID, isActive bool) error

	// DeleteMessage removes a message; recipient rows are removed by the
	// database's cascade rule.
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
