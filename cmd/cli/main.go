// Command cli is the operator tool for bootstrapping BitPro accounts:
// creating the first admin and switching accounts on or off without going
// through the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hamzaimran/bitpro/infra"
	infrarepo "github.com/hamzaimran/bitpro/infra/repository"
	"github.com/hamzaimran/bitpro/pkg/config"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fail("failed to load configuration: %v", err)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		fail("failed to connect to database: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		fail("failed to migrate database: %v", err)
	}
	uow := infrarepo.NewUoW(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "create-admin":
		if len(os.Args) < 7 {
			fmt.Println("Usage: cli create-admin <first> <last> <email> <phone> <easypaisa>")
			return
		}
		createAdmin(ctx, uow, os.Args[2], os.Args[3], os.Args[4], os.Args[5], os.Args[6])
	case "activate":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli activate <email>")
			return
		}
		setActive(ctx, uow, os.Args[2], true)
	case "deactivate":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli deactivate <email>")
			return
		}
		setActive(ctx, uow, os.Args[2], false)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-admin <first> <last> <email> <phone> <easypaisa>")
	fmt.Println("  activate <email>")
	fmt.Println("  deactivate <email>")
}

func createAdmin(ctx context.Context, uow repository.UnitOfWork, first, last, email, phone, easypaisa string) {
	password, err := promptPassword()
	if err != nil {
		fail("failed to read password: %v", err)
	}

	u, err := domainuser.New(first, last, email, phone, easypaisa, password)
	if err != nil {
		fail("invalid account data: %v", err)
	}

	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
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
			Role:      string(domainuser.RoleAdmin),
			Password:  u.Password,
			IsActive:  true,
		})
	})
	if err != nil {
		fail("failed to create admin: %v", err)
	}
	color.Green("Admin %s (%s) created: %s", u.FullName(), email, u.ID)
}

func setActive(ctx context.Context, uow repository.UnitOfWork, email string, active bool) {
	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Users()
		u, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		return repo.Update(ctx, u.ID, &dto.UserUpdate{IsActive: &active})
	})
	if err != nil {
		fail("failed to update %s: %v", email, err)
	}
	if active {
		color.Green("Account %s activated", email)
	} else {
		color.Yellow("Account %s deactivated", email)
	}
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < domainuser.MinPasswordLength {
		return "", domainuser.ErrPasswordTooShort
	}
	return string(password), nil
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}
