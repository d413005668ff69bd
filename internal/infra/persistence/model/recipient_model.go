package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageRecipientModel is the GORM-specific struct for the 'message_recipients' table.
// One row per targeted user per message; the composite unique index enforces
// the at-most-once membership rule, and the foreign key cascades when a
// message is deleted.
type MessageRecipientModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_message_user"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_message_user;index"`
	RecipientType string     `gorm:"type:varchar(20);not null"`
	DistanceKm    *float64   `gorm:"type:decimal(5,1)"`
	IsRead        bool       `gorm:"not null;default:false"`
	ReadAt        *time.Time
	IsClicked     bool       `gorm:"not null;default:false"`
	ClickedAt     *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageRecipientModel) TableName() string {
	return "message_recipients"
}
