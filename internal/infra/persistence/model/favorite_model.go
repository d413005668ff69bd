package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantFavoriteModel is the GORM-specific struct for the 'restaurant_favorites' table.
// The composite unique index keeps one row per (user, restaurant) pair;
// unfavoriting flips is_active instead of deleting the row.
type RestaurantFavoriteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_restaurant;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantFavoriteModel) TableName() string {
	return "restaurant_favorites"
}
