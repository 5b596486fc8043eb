// Package notification exposes the outbox read and mark-read endpoints.
package notification

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/middleware"
	notificationsvc "github.com/hamzaimran/bitpro/pkg/service/notification"
	"github.com/hamzaimran/bitpro/webapi/common"
)

// Routes registers the notification endpoints.
func Routes(app *fiber.App, notifSvc *notificationsvc.Service, store *session.Store) {
	api := app.Group("/api/notifications", middleware.SessionProtected(store))
	api.Get("/count", UnreadCount(notifSvc))
	api.Get("/summary", Summary(notifSvc))
	api.Get("/", Recent(notifSvc))
	api.Patch("/mark-all", MarkAllRead(notifSvc))
	api.Patch("/mark-type", MarkTypeRead(notifSvc))
	api.Patch("/:id/mark-read", MarkRead(notifSvc))
}

// UnreadCount returns the caller's unread notification count.
func UnreadCount(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		count, err := notifSvc.UnreadCount(c.Context(), identity.UserID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{"count": count})
	}
}

// Summary returns the caller's total unread count plus per-type counts.
func Summary(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		summary, err := notifSvc.Summary(c.Context(), identity.UserID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(summary)
	}
}

// Recent returns the caller's latest notifications, read and unread.
func Recent(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		items, err := notifSvc.Recent(c.Context(), identity.UserID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(items)
	}
}

// MarkRead marks one of the caller's notifications read.
func MarkRead(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid notification id")
		}
		if err := notifSvc.MarkRead(c.Context(), id, identity.UserID); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{"message": "Marked read"})
	}
}

// MarkAllRead marks every unread notification of the caller read.
func MarkAllRead(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		if err := notifSvc.MarkAllRead(c.Context(), identity.UserID); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{"message": "All notifications marked read"})
	}
}

// MarkTypeRead marks the caller's unread notifications of one type read.
func MarkTypeRead(notifSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		input, err := common.BindAndValidate[MarkTypeInput](c)
		if input == nil {
			return err
		}
		if err := notifSvc.MarkTypeRead(c.Context(), identity.UserID, input.Type); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{"message": "All " + input.Type + " notifications marked read"})
	}
}
