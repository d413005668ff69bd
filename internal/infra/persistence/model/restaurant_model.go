package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
// Latitude/Longitude stay NULL until the address geocodes successfully.
type RestaurantModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Street           string    `gorm:"type:text"`
	City             string    `gorm:"type:text"`
	State            string    `gorm:"type:text"`
	ZipCode          string    `gorm:"type:varchar(20)"`
	Country          string    `gorm:"type:text"`
	Latitude         *float64  `gorm:"type:decimal(10,8)"`
	Longitude        *float64  `gorm:"type:decimal(11,8)"`
	FormattedAddress string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
