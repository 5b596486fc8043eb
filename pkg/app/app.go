// Package app assembles the application's services from their
// dependencies.
package app

import (
	"log/slog"

	"github.com/hamzaimran/bitpro/pkg/config"
	"github.com/hamzaimran/bitpro/pkg/repository"
	authsvc "github.com/hamzaimran/bitpro/pkg/service/auth"
	notificationsvc "github.com/hamzaimran/bitpro/pkg/service/notification"
	transactionsvc "github.com/hamzaimran/bitpro/pkg/service/transaction"
	usersvc "github.com/hamzaimran/bitpro/pkg/service/user"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the wired services.
type App struct {
	Deps   *Deps
	Config *config.App

	AuthService         *authsvc.Service
	UserService         *usersvc.Service
	TransactionService  *transactionsvc.Service
	NotificationService *notificationsvc.Service
}

// New wires the services. The notification service doubles as the
// fan-out dispatcher for the user and transaction workflows.
func New(deps *Deps, cfg *config.App) *App {
	notifSvc := notificationsvc.New(deps.Uow, deps.Logger)
	return &App{
		Deps:                deps,
		Config:              cfg,
		AuthService:         authsvc.New(deps.Uow, deps.Logger),
		UserService:         usersvc.New(deps.Uow, notifSvc, deps.Logger),
		TransactionService:  transactionsvc.New(deps.Uow, notifSvc, deps.Logger),
		NotificationService: notifSvc,
	}
}
