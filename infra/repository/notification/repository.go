package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository/notification"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed notification repository.
func New(db *gorm.DB) notification.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.NotificationCreate) error {
	return r.db.WithContext(ctx).Create(&Notification{
		ID:        create.ID,
		Recipient: create.Recipient,
		Type:      create.Type,
		RefID:     create.RefID,
		Message:   create.Message,
		CreatedAt: create.CreatedAt,
	}).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.NotificationRead, error) {
	var n Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&n), nil
}

func (r *repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context, recipient uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient = ? AND read = ?", recipient, false).
		Update("read", true).Error
}

func (r *repository) MarkTypeRead(ctx context.Context, recipient uuid.UUID, kind string) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient = ? AND type = ? AND read = ?", recipient, kind, false).
		Update("read", true).Error
}

func (r *repository) UnreadCount(ctx context.Context, recipient uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient = ? AND read = ?", recipient, false).
		Count(&count).Error
	return count, err
}

func (r *repository) UnreadCountByType(ctx context.Context, recipient uuid.UUID) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Select("type, COUNT(*) AS count").
		Where("recipient = ? AND read = ?", recipient, false).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byType := make(map[string]int64, len(rows))
	for _, row := range rows {
		byType[row.Type] = row.Count
	}
	return byType, nil
}

func (r *repository) ListRecent(ctx context.Context, recipient uuid.UUID, limit int) ([]*dto.NotificationRead, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NotificationRead, 0, len(items))
	for i := range items {
		result = append(result, mapModelToDTO(&items[i]))
	}
	return result, nil
}

func mapModelToDTO(n *Notification) *dto.NotificationRead {
	return &dto.NotificationRead{
		ID:        n.ID,
		Recipient: n.Recipient,
		Type:      n.Type,
		RefID:     n.RefID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
