// Package auth provides credential verification: login and password
// change. Session lifecycle lives in the web layer; this service only
// answers whether a credential is valid and for whom.
package auth

import (
	"context"
	"log/slog"

	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository"
	"github.com/hamzaimran/bitpro/pkg/utils"
)

// Service verifies account credentials.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// dummyHash keeps the bcrypt comparison on the not-found path so response
// timing does not reveal whether an email exists.
const dummyHash = "$2a$12$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Login verifies an email/password pair. It fails with ErrUserNotFound for
// an unknown email, ErrInvalidCredentials for a wrong password, and
// ErrUserDeactivated when the account has been switched off by an admin.
// The deactivation check runs after the password check, matching the
// endpoint contract (401 before 403).
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	log := s.logger.With("context", "Login", "email", email)

	u, err := s.uow.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, domainuser.ErrUserNotFound
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("login rejected", "reason", "wrong password")
		return nil, domainuser.ErrInvalidCredentials
	}
	if !u.IsActive {
		log.Warn("login rejected", "reason", "deactivated")
		return nil, domainuser.ErrUserDeactivated
	}
	log.Info("login successful", "userID", u.ID)
	return u, nil
}

// ChangePassword rotates a password after verifying the current one. The
// caller proves ownership by credential, not by session, so the operation
// needs no authenticated identity.
func (s *Service) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	log := s.logger.With("context", "ChangePassword", "email", email)

	if len(newPassword) < domainuser.MinPasswordLength {
		return domainuser.ErrPasswordTooShort
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Users()
		u, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		if !utils.CheckPasswordHash(currentPassword, u.HashedPassword) {
			log.Warn("password change rejected", "reason", "wrong current password")
			return domainuser.ErrInvalidCredentials
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, u.ID, &dto.UserUpdate{Password: &hashed}); err != nil {
			return err
		}
		log.Info("password changed", "userID", u.ID)
		return nil
	})
}
