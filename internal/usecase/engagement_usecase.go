package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageStats is the owner-facing engagement summary of one message
type MessageStats struct {
	MessageID         uuid.UUID `json:"message_id"`
	RecipientCount    int64     `json:"recipient_count"`
	ViewCount         int64     `json:"view_count"`
	ClickCount        int64     `json:"click_count"`
	EngagementRatePct int       `json:"engagement_rate_pct"`
}

// EngagementUsecase defines the interface for engagement tracking use cases
type EngagementUsecase interface {
	// MarkMessageViewed records the first view of a message by a recipient.
	// Repeated views and unknown (message, user) pairs are silent no-ops;
	// the returned bool reports whether this call was the first view.
	MarkMessageViewed(ctx context.Context, messageID, userID uuid.UUID) (bool, error)

	// MarkMessageClicked records the first click, with the same no-op
	// semantics as MarkMessageViewed
	MarkMessageClicked(ctx context.Context, messageID, userID uuid.UUID) (bool, error)

	// GetMessageStats aggregates recipient, view and click counts plus the
	// engagement rate for one message, owner-scoped
	GetMessageStats(ctx context.Context, ownerID, messageID uuid.UUID) (*MessageStats, error)

	// GetRestaurantStats aggregates stats for every message of a restaurant
	GetRestaurantStats(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*MessageStats, error)

	// GetUserFeed retrieves the customer's delivered messages, newest first,
	// with inactive and expired messages filtered out
	GetUserFeed(ctx context.Context, userID uuid.UUID) ([]*entity.FeedItem, error)
}
