// Package repository provides the GORM unit of work binding the entity
// repositories to one transactional scope.
package repository

import (
	"context"

	infranotification "github.com/hamzaimran/bitpro/infra/repository/notification"
	infratransaction "github.com/hamzaimran/bitpro/infra/repository/transaction"
	infrauser "github.com/hamzaimran/bitpro/infra/repository/user"
	"github.com/hamzaimran/bitpro/pkg/repository"
	notificationrepo "github.com/hamzaimran/bitpro/pkg/repository/notification"
	transactionrepo "github.com/hamzaimran/bitpro/pkg/repository/transaction"
	userrepo "github.com/hamzaimran/bitpro/pkg/repository/user"
	"gorm.io/gorm"
)

type uow struct {
	db *gorm.DB
}

// NewUoW creates a unit of work over the given connection.
func NewUoW(db *gorm.DB) repository.UnitOfWork {
	return &uow{db: db}
}

// Do runs fn inside a database transaction. The unit of work passed to fn
// hands out repositories bound to that transaction.
func (u *uow) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&uow{db: tx})
	})
}

func (u *uow) Users() userrepo.Repository {
	return infrauser.New(u.db)
}

func (u *uow) Transactions() transactionrepo.Repository {
	return infratransaction.New(u.db)
}

func (u *uow) Notifications() notificationrepo.Repository {
	return infranotification.New(u.db)
}
