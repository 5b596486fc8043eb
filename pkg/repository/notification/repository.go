// Package notification defines the persistence contract for the outbox.
package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
)

// Repository is the persistence contract for notifications. Get returns
// (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, create *dto.NotificationCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.NotificationRead, error)

	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipient uuid.UUID) error
	MarkTypeRead(ctx context.Context, recipient uuid.UUID, kind string) error

	UnreadCount(ctx context.Context, recipient uuid.UUID) (int64, error)
	UnreadCountByType(ctx context.Context, recipient uuid.UUID) (map[string]int64, error)

	// ListRecent returns the recipient's notifications newest-first,
	// read and unread, capped at limit.
	ListRecent(ctx context.Context, recipient uuid.UUID, limit int) ([]*dto.NotificationRead, error)
}
