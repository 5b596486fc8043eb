// Package repository defines the unit-of-work contract binding the
// per-entity repositories to one transactional scope.
package repository

import (
	"context"

	notificationrepo "github.com/hamzaimran/bitpro/pkg/repository/notification"
	transactionrepo "github.com/hamzaimran/bitpro/pkg/repository/transaction"
	userrepo "github.com/hamzaimran/bitpro/pkg/repository/user"
)

// UnitOfWork exposes the repositories and runs units of work atomically.
// Repositories obtained inside Do share the transaction; repositories
// obtained outside run against the base connection.
type UnitOfWork interface {
	// Do executes fn in a transaction. Returning an error rolls back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Users() userrepo.Repository
	Transactions() transactionrepo.Repository
	Notifications() notificationrepo.Repository
}
