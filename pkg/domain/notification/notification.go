// Package notification defines per-recipient outbox messages emitted by
// account and transaction events.
package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Well-known notification type tags. The field is free-form; these are the
// tags the workflow currently emits.
const (
	TypeTransaction = "transaction"
	TypeNewUser     = "new_user"
)

var (
	// ErrNotificationNotFound is returned when a notification cannot be
	// resolved by id.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotRecipient is returned when a caller tries to mark someone
	// else's notification as read.
	ErrNotRecipient = errors.New("forbidden")
)

// Notification is one outbox message. The RefID is a weak reference: it
// points at a transaction for display purposes but carries no ownership.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	Recipient uuid.UUID  `json:"recipient"`
	Type      string     `json:"type"`
	RefID     *uuid.UUID `json:"refId"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

// New creates an unread notification for a recipient.
func New(recipient uuid.UUID, kind string, refID *uuid.UUID, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Type:      kind,
		RefID:     refID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
