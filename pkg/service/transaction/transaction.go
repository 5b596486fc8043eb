// Package transaction orchestrates the ledger workflow: submission, admin
// review and the notification fan-out those transitions trigger.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	domainnotif "github.com/hamzaimran/bitpro/pkg/domain/notification"
	domaintx "github.com/hamzaimran/bitpro/pkg/domain/transaction"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository"
)

// Notifier applies a fan-out batch after the primary mutation committed.
// Implementations must be best-effort: they log failures and never block
// or fail the ledger operation.
type Notifier interface {
	Dispatch(ctx context.Context, batch []*dto.NotificationCreate)
}

// Service is the transaction workflow engine.
type Service struct {
	uow      repository.UnitOfWork
	notifier Notifier
	logger   *slog.Logger
}

// New creates a transaction Service.
func New(uow repository.UnitOfWork, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{uow: uow, notifier: notifier, logger: logger}
}

// Submit validates and persists a pending ledger entry, then fans out
// notifications to every admin and an acknowledgement to the submitter.
// The fan-out runs after the entry committed and cannot roll it back.
func (s *Service) Submit(
	ctx context.Context,
	userID uuid.UUID,
	kind string,
	amount int64,
	screenshot string,
) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "Submit", "userID", userID)

	t, err := domaintx.New(userID, domaintx.Type(kind), amount, screenshot)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Transactions().Create(ctx, &dto.TransactionCreate{
			ID:         t.ID,
			UserID:     t.UserID,
			Type:       string(t.Type),
			Amount:     t.Amount,
			Screenshot: t.Screenshot,
			Status:     string(t.Status),
			CreatedAt:  t.CreatedAt,
		})
	})
	if err != nil {
		log.Error("ledger write failed", "error", err)
		return nil, err
	}
	log.Info("transaction submitted", "transactionID", t.ID, "type", t.Type, "amount", t.Amount)

	s.notifier.Dispatch(ctx, s.submitFanOut(ctx, t))

	return mapTransaction(t), nil
}

// submitFanOut builds one notification per admin plus the submitter's
// acknowledgement. Lookup failures shrink the batch rather than failing
// the submission.
func (s *Service) submitFanOut(ctx context.Context, t *domaintx.Transaction) []*dto.NotificationCreate {
	log := s.logger.With("context", "submitFanOut", "transactionID", t.ID)
	users := s.uow.Users()

	var batch []*dto.NotificationCreate
	refID := t.ID

	submitter, err := users.Get(ctx, t.UserID)
	if err != nil || submitter == nil {
		log.Error("submitter lookup failed", "error", err)
		return batch
	}

	admins, err := users.ListByRole(ctx, string(domainuser.RoleAdmin))
	if err != nil {
		log.Error("admin lookup failed", "error", err)
	}
	for _, admin := range admins {
		batch = append(batch, newNotification(admin.ID, &refID, fmt.Sprintf(
			"New %s request from %s: PKR %d", t.Type, submitter.FullName(), t.Amount,
		)))
	}
	batch = append(batch, newNotification(t.UserID, &refID, fmt.Sprintf(
		"Your %s request of PKR %d is pending.", t.Type, t.Amount,
	)))
	return batch
}

// Review applies an admin decision to a pending entry and notifies the
// owner. Re-review is not guarded: a second call overwrites the decision,
// comment, review timestamp, reviewer and (on approval) the screenshot.
// Concurrent reviews therefore race and the last write wins.
func (s *Service) Review(
	ctx context.Context,
	adminID uuid.UUID,
	transactionID uuid.UUID,
	decision string,
	comment string,
	screenshot string,
) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "Review", "adminID", adminID, "transactionID", transactionID)

	if !domaintx.ValidDecision(domaintx.Status(decision)) {
		return nil, domaintx.ErrInvalidStatus
	}

	review := &dto.TransactionReview{
		Status:     decision,
		Comment:    comment,
		ApprovedAt: time.Now().UTC(),
		ApprovedBy: adminID,
	}
	if decision == string(domaintx.StatusApproved) && screenshot != "" {
		review.Screenshot = screenshot
	}

	var updated *dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Transactions()
		t, err := repo.Get(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return domaintx.ErrTransactionNotFound
		}
		if err := repo.Review(ctx, transactionID, review); err != nil {
			return err
		}
		updated, err = repo.Get(ctx, transactionID)
		return err
	})
	if err != nil {
		if err != domaintx.ErrTransactionNotFound {
			log.Error("review failed", "error", err)
		}
		return nil, err
	}
	log.Info("transaction reviewed", "decision", decision)

	s.notifier.Dispatch(ctx, reviewFanOut(updated))

	return updated, nil
}

// reviewFanOut builds the owner's approval or rejection notice. Rejections
// include the admin comment.
func reviewFanOut(t *dto.TransactionRead) []*dto.NotificationCreate {
	refID := t.ID
	message := fmt.Sprintf("Your %s of PKR %d was approved.", t.Type, t.Amount)
	if t.Status == string(domaintx.StatusRejected) {
		message = fmt.Sprintf("Your %s of PKR %d was rejected. %s", t.Type, t.Amount, t.AdminComment)
	}
	return []*dto.NotificationCreate{newNotification(t.UserID, &refID, message)}
}

// ListForOwner returns the account's ledger entries newest-first.
func (s *Service) ListForOwner(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	return s.uow.Transactions().ListByUser(ctx, userID)
}

// ListForReview returns entries in the given status (default pending)
// joined with submitter contact fields, newest-first.
func (s *Service) ListForReview(ctx context.Context, status string) ([]*dto.TransactionWithUser, error) {
	if status == "" {
		status = string(domaintx.StatusPending)
	}
	return s.uow.Transactions().ListByStatusWithUser(ctx, status)
}

// Summary computes the approved-only rollup for an account. Pending and
// rejected entries never contribute.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (domaintx.Summary, error) {
	reads, err := s.uow.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return domaintx.Summary{}, err
	}
	txs := make([]domaintx.Transaction, 0, len(reads))
	for _, r := range reads {
		txs = append(txs, domaintx.Transaction{
			Type:   domaintx.Type(r.Type),
			Amount: r.Amount,
			Status: domaintx.Status(r.Status),
		})
	}
	return domaintx.Summarize(txs), nil
}

func newNotification(recipient uuid.UUID, refID *uuid.UUID, message string) *dto.NotificationCreate {
	return &dto.NotificationCreate{
		ID:        uuid.New(),
		Recipient: recipient,
		Type:      domainnotif.TypeTransaction,
		RefID:     refID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func mapTransaction(t *domaintx.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		Screenshot:   t.Screenshot,
		Status:       string(t.Status),
		AdminComment: t.AdminComment,
		CreatedAt:    t.CreatedAt,
		ApprovedAt:   t.ApprovedAt,
		ApprovedBy:   t.ApprovedBy,
	}
}
