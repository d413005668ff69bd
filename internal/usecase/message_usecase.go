package usecase

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// BroadcastInput represents the owner-supplied fields of a broadcast.
// Expiry is relative: the service computes expiresAt = now + expires_in_hours,
// falling back to the configured default when the field is omitted.
type BroadcastInput struct {
	Title          string               `json:"title" validate:"omitempty,max=100"`
	Message        string               `json:"message" validate:"required,max=500"`
	MessageType    string               `json:"message_type" validate:"required"`
	OfferDetails   *entity.OfferDetails `json:"offer_details,omitempty"`
	TargetRadiusKm int                  `json:"target_radius_km" validate:"required"`
	ExpiresInHours *int                 `json:"expires_in_hours,omitempty" validate:"omitempty,min=1"`
}

// MessageUpdateInput represents editable fields of an existing message.
// Editing never re-resolves recipients; the snapshot is immutable.
type MessageUpdateInput struct {
	Title        string               `json:"title" validate:"omitempty,max=100"`
	Message      string               `json:"message" validate:"required,max=500"`
	MessageType  string               `json:"message_type" validate:"required"`
	OfferDetails *entity.OfferDetails `json:"offer_details,omitempty"`
	IsActive     bool                 `json:"is_active"`
	ExpiresAt    *time.Time           `json:"expires_at,omitempty"`
}

// BroadcastResult is the outcome of a broadcast: the persisted message plus
// a summary of the resolved recipient snapshot
type BroadcastResult struct {
	Message        *entity.RestaurantMessage `json:"message"`
	RecipientCount int                       `json:"recipient_count"`
	FavoriteCount  int                       `json:"favorite_count"`
	NearbyCount    int                       `json:"nearby_count"`
}

// MessageUsecase defines the interface for message broadcast use cases
type MessageUsecase interface {
	// BroadcastMessage validates the input, resolves the recipient snapshot,
	// persists message and snapshot atomically, and hands the committed
	// broadcast to the push pipeline
	BroadcastMessage(ctx context.Context, ownerID, restaurantID uuid.UUID, input *BroadcastInput) (*BroadcastResult, error)

	// GetMessage retrieves a single message by ID
	GetMessage(ctx context.Context, id uuid.UUID) (*entity.RestaurantMessage, error)

	// GetRestaurantMessages retrieves all messages of a restaurant, newest first
	GetRestaurantMessages(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*entity.RestaurantMessage, error)

	// UpdateMessage edits message content without touching the recipient snapshot
	UpdateMessage(ctx context.Context, ownerID, messageID uuid.UUID, input *MessageUpdateInput) (*entity.RestaurantMessage, error)

	// SetMessageActive flips the hard active toggle
	SetMessageActive(ctx context.Context, ownerID, messageID uuid.UUID, isActive bool) error

	// DeleteMessage removes a message and, via cascade, its snapshot
	DeleteMessage(ctx context.Context, ownerID, messageID uuid.UUID) error
}
