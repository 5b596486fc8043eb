// Package webapi provides the HTTP surface. It is organized into
// sub-packages per area:
// - auth: signup, login, logout, password change, current profile
// - user: admin account management
// - transaction: ledger submission and review
// - notification: outbox reads and mark-read
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hamzaimran/bitpro/pkg/app"
	authweb "github.com/hamzaimran/bitpro/webapi/auth"
	"github.com/hamzaimran/bitpro/webapi/common"
	notificationweb "github.com/hamzaimran/bitpro/webapi/notification"
	transactionweb "github.com/hamzaimran/bitpro/webapi/transaction"
	userweb "github.com/hamzaimran/bitpro/webapi/user"
)

// NewSessionStore builds the cookie session store from config.
func NewSessionStore(a *app.App) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + a.Config.Session.CookieName,
		Expiration:     a.Config.Session.Expiry,
		CookieHTTPOnly: true,
		CookieSecure:   a.Config.Session.Secure,
	})
}

// SetupApp initializes Fiber with middleware, the session store and all
// routes.
func SetupApp(a *app.App) *fiber.App {
	return SetupAppWithStore(a, NewSessionStore(a))
}

// SetupAppWithStore is SetupApp with an injected session store, so tests
// can share the store with their request helpers.
func SetupAppWithStore(a *app.App, store *session.Store) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BitPro API is running")
	})

	authweb.Routes(fiberApp, a.AuthService, a.UserService, store)
	userweb.Routes(fiberApp, a.UserService, store)
	transactionweb.Routes(fiberApp, a.TransactionService, store)
	notificationweb.Routes(fiberApp, a.NotificationService, store)

	return fiberApp
}
