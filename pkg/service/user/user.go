// Package user provides business logic for account management: signup,
// activation, role listings and the admin read paths.
package user

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
type Notifier interface {
	Dispatch(ctx context.Context, batch []*dto.NotificationCreate)
}

// Service provides account management operations.
type Service struct {
	uow      repository.UnitOfWork
	notifier Notifier
	logger   *slog.Logger
}

// New creates a user Service.
func New(uow repository.UnitOfWork, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{uow: uow, notifier: notifier, logger: logger}
}

// Register creates a new account with role user and active flag set, and
// notifies every admin of the signup. The notification is best-effort and
// never rolls back the account.
func (s *Service) Register(
	ctx context.Context,
	firstName, lastName, email, phone, easypaisa, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "Register", "email", email)

	u, err := domainuser.New(firstName, lastName, email, phone, easypaisa, password)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Users()
		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return domainuser.ErrEmailAlreadyExists
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Phone:     u.Phone,
			Easypaisa: u.Easypaisa,
			Role:      string(u.Role),
			Password:  u.Password,
			IsActive:  u.IsActive,
		})
	})
	if err != nil {
		if err != domainuser.ErrEmailAlreadyExists {
			log.Error("signup failed", "error", err)
		}
		return nil, err
	}
	log.Info("user registered", "userID", u.ID)

	s.notifier.Dispatch(ctx, s.signupFanOut(ctx, u))

	return s.uow.Users().Get(ctx, u.ID)
}

func (s *Service) signupFanOut(ctx context.Context, u *domainuser.User) []*dto.NotificationCreate {
	admins, err := s.uow.Users().ListByRole(ctx, string(domainuser.RoleAdmin))
	if err != nil {
		s.logger.Error("admin lookup failed", "context", "signupFanOut", "error", err)
		return nil
	}
	message := fmt.Sprintf("New user registered: %s (%s)", u.FullName(), u.Email)
	batch := make([]*dto.NotificationCreate, 0, len(admins))
	for _, admin := range admins {
		batch = append(batch, &dto.NotificationCreate{
			ID:        uuid.New(),
			Recipient: admin.ID,
			Type:      domainnotif.TypeNewUser,
			Message:   message,
			CreatedAt: time.Now().UTC(),
		})
	}
	return batch
}

// Get returns one account by id, or ErrUserNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	u, err := s.uow.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domainuser.ErrUserNotFound
	}
	return u, nil
}

// ListByRole returns accounts holding the given role.
func (s *Service) ListByRole(ctx context.Context, role string) ([]*dto.UserRead, error) {
	return s.uow.Users().ListByRole(ctx, role)
}

// SetActive sets the account's active flag.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Users()
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		return repo.Update(ctx, id, &dto.UserUpdate{IsActive: &active})
	})
}

// ToggleActive flips the account's active flag and returns the new value.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (active bool, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Users()
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		active = !u.IsActive
		return repo.Update(ctx, id, &dto.UserUpdate{IsActive: &active})
	})
	if err == nil {
		s.logger.Info("user active flag toggled", "userID", id, "isActive", active)
	}
	return
}

// ListWithActivity returns every account joined with transaction counts and
// summed amounts across all statuses. Unlike the approved-only summary in
// Detail, pending and rejected entries count here.
func (s *Service) ListWithActivity(ctx context.Context) ([]*dto.UserActivity, error) {
	return s.uow.Users().ListWithActivity(ctx)
}

// Detail is the admin view of one account: profile, full transaction
// history newest-first, and the approved-only summary.
type Detail struct {
	User         *dto.UserRead          `json:"user"`
	Transactions []*dto.TransactionRead `json:"transactions"`
	Summary      domaintx.Summary       `json:"summary"`
}

// GetDetail assembles the admin detail view for one account. The password
// hash never leaves this layer; UserRead does not serialize it.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	reads, err := s.uow.Transactions().ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	txs := make([]domaintx.Transaction, 0, len(reads))
	for _, r := range reads {
		txs = append(txs, domaintx.Transaction{
			Type:   domaintx.Type(r.Type),
			Amount: r.Amount,
			Status: domaintx.Status(r.Status),
		})
	}
	return &Detail{
		User:         u,
		Transactions: reads,
		Summary:      domaintx.Summarize(txs),
	}, nil
}
