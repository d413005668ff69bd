// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message type values for RestaurantMessage.MessageType.
const (
	MessageTypeOffer        = "offer"
	MessageTypeAnnouncement = "announcement"
	MessageTypePromotion    = "promotion"
)

// ValidMessageType reports whether t is a known message type.
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeOffer, MessageTypeAnnouncement, MessageTypePromotion:
		return true
	}

	return false
}

// OfferDetails carries the structured payload of an offer message.
// It is validated at construction and stored as a JSON column; readers never
// have to re-check its shape.
type OfferDetails struct {
	DiscountPct  int         `json:"discount_pct,omitempty"`  // Discount percentage, 0 when the offer is not a discount.
	ValidUntil   *time.Time  `json:"valid_until,omitempty"`   // Optional end of the offer's validity.
	Conditions   string      `json:"conditions,omitempty"`    // Free-text conditions shown to the customer.
	MenuItemIDs  []uuid.UUID `json:"menu_item_ids,omitempty"` // Optional menu items the offer applies to.
	MinimumOrder float64     `json:"minimum_order,omitempty"` // Minimum order value for the offer to apply.
}

// RestaurantMessage represents an offer or announcement broadcast by one
// restaurant to its recipient snapshot.
type RestaurantMessage struct {
	ID             uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the message.
	RestaurantID   uuid.UUID     `json:"restaurant_id"`   // The restaurant this message belongs to.
	SenderID       uuid.UUID     `json:"sender_id"`       // The owner who sent the message.
	Title          string        `json:"title"`           // Short title, at most 100 characters.
	Message        string        `json:"message"`         // Body text, non-empty and at most 500 characters.
	MessageType    string        `json:"message_type"`    // One of offer, announcement, promotion.
	OfferDetails   *OfferDetails `json:"offer_details"`   // Structured offer payload, nil for plain announcements.
	TargetRadiusKm int           `json:"target_radius_km"` // Nearby-targeting radius in kilometers, within [1, 25].
	IsActive       bool          `json:"is_active"`       // Owner-controlled hard toggle.
	CreatedAt      time.Time     `json:"created_at"`      // Timestamp of when the message was broadcast.
	UpdatedAt      time.Time     `json:"updated_at"`      // Timestamp of the last modification.
	ExpiresAt      *time.Time    `json:"expires_at"`      // Optional advisory expiry; evaluated lazily by readers.
}

// CurrentlyActive reports whether the message should be shown at the given
// time. Expiry is advisory: there is no background sweeper, readers evaluate
// it on every access.
func (m *RestaurantMessage) CurrentlyActive(now time.Time) bool {
	if !m.IsActive {
		return false
	}
	if m.ExpiresAt != nil && !m.ExpiresAt.After(now) {
		return false
	}

	return true
}
