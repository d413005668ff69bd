package model

import (
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantMessageModel is the GORM-specific struct for the 'restaurant_messages' table.
// It represents an offer or announcement broadcast by a restaurant.
type RestaurantMessageModel struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title          string               `gorm:"type:varchar(100);not null"`
	Message        string               `gorm:"type:varchar(500);not null"`
	MessageType    string               `gorm:"type:varchar(20);not null"`
	OfferDetails   *entity.OfferDetails `gorm:"type:jsonb;serializer:json"`
	TargetRadiusKm int                  `gorm:"not null"`
	IsActive       bool                 `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ExpiresAt      *time.Time

	Recipients []MessageRecipientModel `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantMessageModel) TableName() string {
	return "restaurant_messages"
}
