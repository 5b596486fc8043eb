package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCreate represents one outbox message to persist.
type NotificationCreate struct {
	ID        uuid.UUID
	Recipient uuid.UUID
	Type      string
	RefID     *uuid.UUID
	Message   string
	CreatedAt time.Time
}

// NotificationRead is a read-optimized view of a notification.
type NotificationRead struct {
	ID        uuid.UUID  `json:"id"`
	Recipient uuid.UUID  `json:"recipient"`
	Type      string     `json:"type"`
	RefID     *uuid.UUID `json:"refId"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NotificationSummary aggregates unread counts for a recipient.
type NotificationSummary struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"byType"`
}
