package repository

import (
	"context"
	"errors"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipientNotFound is returned when a recipient snapshot row is not found.
var ErrRecipientNotFound = errors.New("recipient not found")

// RecipientRepository defines the interface for recipient-snapshot database operations.
type RecipientRepository interface {
	// CreateRecipients persists the full recipient snapshot of a message in a
	// batch. It is only ever called inside the broadcast transaction.
	CreateRecipients(ctx context.Context, recipients []*entity.MessageRecipient) error

	// FindRecipientsByMessage retrieves a message's snapshot ordered by user id.
	FindRecipientsByMessage(ctx context.Context, messageID uuid.UUID) ([]*entity.MessageRecipient, error)

	// MarkRead sets the read flag and timestamp on the (message, user) row if
	// and only if the flag is not yet set. It reports whether a row was
	// updated; false means either an unknown pair or an already-read row,
	// both of which the caller treats as a no-op.
	MarkRead(ctx context.Context, messageID, userID uuid.UUID, at time.Time) (bool, error)

	// MarkClicked is the click counterpart of MarkRead.
	MarkClicked(ctx context.Context, messageID, userID uuid.UUID, at time.Time) (bool, error)

	// StatsByMessage aggregates recipient, view and click counts for one message.
	StatsByMessage(ctx context.Context, messageID uuid.UUID) (*entity.RecipientStats, error)

	// StatsByMessages aggregates counts for many messages in one query.
	// Messages without recipients are absent from the result map.
	StatsByMessages(ctx context.Context, messageIDs []uuid.UUID) (map[uuid.UUID]*entity.RecipientStats, error)

	// FindFeedForUser retrieves the user's snapshot rows joined with their
	// currently-active messages, newest first.
	FindFeedForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.FeedItem, error)
}
