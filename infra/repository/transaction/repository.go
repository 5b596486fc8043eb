package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository/transaction"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed transaction repository.
func New(db *gorm.DB) transaction.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	return r.db.WithContext(ctx).Create(&Transaction{
		ID:         create.ID,
		UserID:     create.UserID,
		Type:       create.Type,
		Amount:     create.Amount,
		Screenshot: create.Screenshot,
		Status:     create.Status,
		CreatedAt:  create.CreatedAt,
	}).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var t Transaction
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

// reviewRow flattens the submitter join for scanning.
type reviewRow struct {
	Transaction
	UserFirstName string
	UserLastName  string
	UserEmail     string
	UserPhone     string
}

func (r *repository) ListByStatusWithUser(ctx context.Context, status string) ([]*dto.TransactionWithUser, error) {
	var rows []reviewRow
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select(`transactions.*,
			users.first_name AS user_first_name,
			users.last_name AS user_last_name,
			users.email AS user_email,
			users.phone AS user_phone`).
		Joins("JOIN users ON users.id = transactions.user_id").
		Where("transactions.status = ?", status).
		Order("transactions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionWithUser, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		result = append(result, &dto.TransactionWithUser{
			TransactionRead: *mapModelToDTO(&row.Transaction),
			User: dto.TransactionSubmitter{
				ID:        row.UserID,
				FirstName: row.UserFirstName,
				LastName:  row.UserLastName,
				Email:     row.UserEmail,
				Phone:     row.UserPhone,
			},
		})
	}
	return result, nil
}

func (r *repository) Review(ctx context.Context, id uuid.UUID, review *dto.TransactionReview) error {
	updates := map[string]interface{}{
		"status":        review.Status,
		"admin_comment": review.Comment,
		"approved_at":   review.ApprovedAt,
		"approved_by":   review.ApprovedBy,
	}
	if review.Screenshot != "" {
		updates["screenshot"] = review.Screenshot
	}
	return r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func mapModelToDTO(t *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         t.Type,
		Amount:       t.Amount,
		Screenshot:   t.Screenshot,
		Status:       t.Status,
		AdminComment: t.AdminComment,
		CreatedAt:    t.CreatedAt,
		ApprovedAt:   t.ApprovedAt,
		ApprovedBy:   t.ApprovedBy,
	}
}
