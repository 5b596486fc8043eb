// Package auth exposes signup, login, logout, password change and the
// current-profile endpoint. It owns the session cookie lifecycle.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hamzaimran/bitpro/pkg/middleware"
	authsvc "github.com/hamzaimran/bitpro/pkg/service/auth"
	usersvc "github.com/hamzaimran/bitpro/pkg/service/user"
	"github.com/hamzaimran/bitpro/webapi/common"
)

// Routes registers the authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service, store *session.Store) {
	app.Post("/signup", Signup(userSvc))
	app.Post("/login", Login(authSvc, store))
	app.Get("/logout", Logout(store))
	app.Post("/api/change-password", ChangePassword(authSvc))
	app.Get("/api/user", middleware.SessionProtected(store), CurrentUser(userSvc))
}

// Signup creates a new account with role user.
func Signup(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Register(c.Context(),
			input.FirstName, input.LastName, input.Email,
			input.Phone, input.Easypaisa, input.Password,
		)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Signup successful",
			"userId":  u.ID,
		})
	}
}

// Login verifies credentials and establishes the cookie session. A
// deactivated account fails after the password check and no session is
// written.
func Login(authSvc *authsvc.Service, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		sess, err := store.Get(c)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "session error")
		}
		sess.Set(middleware.SessionUserID, u.ID.String())
		sess.Set(middleware.SessionRole, u.Role)
		if err := sess.Save(); err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "session error")
		}
		return c.JSON(fiber.Map{
			"message": "Login successful",
			"user": fiber.Map{
				"firstName": u.FirstName,
				"email":     u.Email,
			},
		})
	}
}

// Logout destroys the session.
func Logout(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "error logging out")
		}
		if err := sess.Destroy(); err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "error logging out")
		}
		return c.JSON(fiber.Map{"message": "Logout successful"})
	}
}

// ChangePassword rotates a password after verifying the current one.
func ChangePassword(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ChangePasswordInput](c)
		if input == nil {
			return err
		}
		err = authSvc.ChangePassword(c.Context(),
			input.Email, input.CurrentPassword, input.NewPassword,
		)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{"message": "Password updated successfully"})
	}
}

// CurrentUser returns the caller's own profile.
func CurrentUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		u, err := userSvc.Get(c.Context(), identity.UserID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"fullName":  u.FullName(),
			"email":     u.Email,
			"phone":     u.Phone,
			"easypaisa": u.Easypaisa,
			"role":      u.Role,
		})
	}
}
