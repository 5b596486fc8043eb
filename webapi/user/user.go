// Package user exposes the admin account-management endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/middleware"
	usersvc "github.com/hamzaimran/bitpro/pkg/service/user"
	"github.com/hamzaimran/bitpro/webapi/common"
)

// Routes registers the admin account endpoints. The middleware is attached
// per route: a group on "/api" would register AdminOnly as prefix
// middleware for the whole app and lock regular users out of every /api
// endpoint registered after it.
func Routes(app *fiber.App, userSvc *usersvc.Service, store *session.Store) {
	protected := middleware.SessionProtected(store)
	adminOnly := middleware.AdminOnly()
	app.Get("/api/admins", protected, adminOnly, ListAdmins(userSvc))
	app.Get("/api/users", protected, adminOnly, ListUsers(userSvc))
	app.Patch("/api/admin/users/:id/toggle-active", protected, adminOnly, ToggleActive(userSvc))
	app.Get("/api/admin/users/:id", protected, adminOnly, GetDetail(userSvc))
}

// adminView is the reduced profile returned by the admins listing.
type adminView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// ListAdmins returns every account holding the admin role.
func ListAdmins(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admins, err := userSvc.ListByRole(c.Context(), string(domainuser.RoleAdmin))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		views := make([]adminView, 0, len(admins))
		for _, a := range admins {
			views = append(views, adminView{
				ID:        a.ID,
				FirstName: a.FirstName,
				LastName:  a.LastName,
				Email:     a.Email,
			})
		}
		return c.JSON(views)
	}
}

// ListUsers returns every account with transaction counts and summed
// amounts across all statuses.
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.ListWithActivity(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(users)
	}
}

// ToggleActive flips an account's active flag.
func ToggleActive(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user id")
		}
		active, err := userSvc.ToggleActive(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		message := "User deactivated"
		if active {
			message = "User activated"
		}
		return c.JSON(fiber.Map{
			"message":  message,
			"isActive": active,
		})
	}
}

// GetDetail returns an account's profile, full transaction history and
// approved-only summary. The password hash is never included.
func GetDetail(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user id")
		}
		detail, err := userSvc.GetDetail(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(detail)
	}
}
