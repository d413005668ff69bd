package service

import (
	"context"
)

// BroadcastEvent represents a committed message broadcast handed to the push
// worker for FCM delivery. The recipient snapshot is already persisted when
// this event is published; delivery failures never affect the broadcast.
type BroadcastEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	MessageID    string   `json:"message_id"`
	RestaurantID string   `json:"restaurant_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	RecipientIDs []string `json:"recipient_ids"` // User ids of the persisted snapshot
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast event for async push delivery
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
