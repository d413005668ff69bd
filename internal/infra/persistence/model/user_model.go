package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// The origin coordinate is the user's fixed home location; NULL until the
// user shares one.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayName     string    `gorm:"type:varchar(100)"`
	OriginLatitude  *float64  `gorm:"type:decimal(10,8)"`
	OriginLongitude *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Devices   []UserDeviceModel         `gorm:"foreignKey:UserID"`
	Favorites []RestaurantFavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
