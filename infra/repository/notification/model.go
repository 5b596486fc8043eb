package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a persisted outbox message.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	Recipient uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"type:varchar(32);not null"`
	RefID     *uuid.UUID `gorm:"type:uuid"`
	Message   string     `gorm:"type:text;not null"`
	Read      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}
