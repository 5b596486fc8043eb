package main

import (
	"fmt"
	"log"

	"github.com/hamzaimran/bitpro/infra"
	infrarepo "github.com/hamzaimran/bitpro/infra/repository"
	"github.com/hamzaimran/bitpro/internal/logging"
	"github.com/hamzaimran/bitpro/pkg/app"
	"github.com/hamzaimran/bitpro/pkg/config"
	"github.com/hamzaimran/bitpro/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := logging.New(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a := app.New(&app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
	}, cfg)

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
