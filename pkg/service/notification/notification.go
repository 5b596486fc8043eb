// Package notification provides the outbox query service and the
// best-effort dispatcher applied after ledger mutations commit.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	domainnotif "github.com/hamzaimran/bitpro/pkg/domain/notification"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository"
)

// RecentLimit caps the notification feed.
const RecentLimit = 50

// Service answers read-side queries over the outbox and applies fan-out
// batches produced by the workflow services.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a notification Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Dispatch writes a fan-out batch sequentially, best-effort. A failed write
// is logged and skipped; the remaining messages are still attempted. The
// ledger entry that produced the batch is authoritative, notifications are
// not, so no error is surfaced.
func (s *Service) Dispatch(ctx context.Context, batch []*dto.NotificationCreate) {
	repo := s.uow.Notifications()
	for _, create := range batch {
		if err := repo.Create(ctx, create); err != nil {
			s.logger.Error("notification write failed",
				"recipient", create.Recipient,
				"type", create.Type,
				"error", err,
			)
		}
	}
}

// MarkRead marks one notification read. Only the recipient may do so.
func (s *Service) MarkRead(ctx context.Context, id, callerID uuid.UUID) error {
	repo := s.uow.Notifications()
	n, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domainnotif.ErrNotificationNotFound
	}
	if n.Recipient != callerID {
		return domainnotif.ErrNotRecipient
	}
	return repo.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification of the recipient read.
func (s *Service) MarkAllRead(ctx context.Context, recipient uuid.UUID) error {
	return s.uow.Notifications().MarkAllRead(ctx, recipient)
}

// MarkTypeRead marks the recipient's unread notifications of one type read.
func (s *Service) MarkTypeRead(ctx context.Context, recipient uuid.UUID, kind string) error {
	return s.uow.Notifications().MarkTypeRead(ctx, recipient, kind)
}

// UnreadCount returns the recipient's unread notification count.
func (s *Service) UnreadCount(ctx context.Context, recipient uuid.UUID) (int64, error) {
	return s.uow.Notifications().UnreadCount(ctx, recipient)
}

// Summary returns the total unread count plus per-type unread counts.
func (s *Service) Summary(ctx context.Context, recipient uuid.UUID) (*dto.NotificationSummary, error) {
	repo := s.uow.Notifications()
	total, err := repo.UnreadCount(ctx, recipient)
	if err != nil {
		return nil, err
	}
	byType, err := repo.UnreadCountByType(ctx, recipient)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationSummary{Total: total, ByType: byType}, nil
}

// Recent returns the recipient's latest notifications, read and unread.
func (s *Service) Recent(ctx context.Context, recipient uuid.UUID) ([]*dto.NotificationRead, error) {
	return s.uow.Notifications().ListRecent(ctx, recipient, RecentLimit)
}
