package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageModel mirrors the 'messages' table. Rows are never updated.
type MessageModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID string    `gorm:"type:varchar(64);not null;index:idx_messages_user_created,priority:1"`
	Role   string    `gorm:"type:varchar(16);not null"`
	Body   string    `gorm:"type:text;not null"`
	// NULL for assistant turns so the unique index only covers inbound messages.
	PlatformMessageID *string           `gorm:"type:varchar(255);uniqueIndex"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt         time.Time         `gorm:"index:idx_messages_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
