// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipient type values for MessageRecipient.RecipientType.
const (
	// RecipientTypeFavorite marks a user included because they favorited the
	// restaurant; favorites bypass the radius check.
	RecipientTypeFavorite = "favorite"
	// RecipientTypeNearby marks a user included because their origin
	// coordinate fell within the message's target radius.
	RecipientTypeNearby = "nearby"
)

// MessageRecipient is one row of a message's immutable recipient snapshot,
// taken at broadcast time. A user appears at most once per message; a user
// who is both a favoriter and within radius is recorded as favorite.
type MessageRecipient struct {
	ID            uuid.UUID  `json:"id"`             // The Global Unique Identifier (GUID) for the snapshot row.
	MessageID     uuid.UUID  `json:"message_id"`     // The message this row belongs to.
	UserID        uuid.UUID  `json:"user_id"`        // The targeted user.
	RecipientType string     `json:"recipient_type"` // Membership reason: favorite or nearby.
	DistanceKm    *float64   `json:"distance_km"`    // Distance at broadcast time; nil for favorite recipients.
	IsRead        bool       `json:"is_read"`        // Whether the user has viewed the message.
	ReadAt        *time.Time `json:"read_at"`        // Timestamp of the first view, never overwritten.
	IsClicked     bool       `json:"is_clicked"`     // Whether the user has clicked the message.
	ClickedAt     *time.Time `json:"clicked_at"`     // Timestamp of the first click, never overwritten.
	CreatedAt     time.Time  `json:"created_at"`     // Timestamp of when the snapshot row was created.
}

// RecipientStats aggregates a message's snapshot for the owner dashboard.
type RecipientStats struct {
	RecipientCount int64 `json:"recipient_count"` // Size of the snapshot.
	ViewCount      int64 `json:"view_count"`      // Rows with the read flag set.
	ClickCount     int64 `json:"click_count"`     // Rows with the clicked flag set.
}

// FeedItem is a customer-facing view of one delivered message: the snapshot
// row joined with its currently-active message.
type FeedItem struct {
	Message   *RestaurantMessage `json:"message"`
	Recipient *MessageRecipient  `json:"recipient"`
}
