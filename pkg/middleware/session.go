// Package middleware provides the session-backed authorization gate. It
// resolves the cookie session to a request-scoped Identity so no handler
// or service ever reads ambient session state.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
)

// Session value keys.
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

const identityLocal = "identity"

// Identity is the caller resolved from the session cookie.
type Identity struct {
	UserID uuid.UUID
	Role   domainuser.Role
}

// IsAdmin reports whether the caller holds administrative privilege.
func (i Identity) IsAdmin() bool {
	return i.Role == domainuser.RoleAdmin
}

// SessionProtected resolves the caller's identity from the session store
// and stores it in the request locals. Requests without a valid session
// are rejected with 401.
func SessionProtected(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return unauthenticated(c)
		}
		rawID, _ := sess.Get(SessionUserID).(string)
		if rawID == "" {
			return unauthenticated(c)
		}
		userID, err := uuid.Parse(rawID)
		if err != nil {
			return unauthenticated(c)
		}
		role, _ := sess.Get(SessionRole).(string)
		c.Locals(identityLocal, Identity{UserID: userID, Role: domainuser.Role(role)})
		return c.Next()
	}
}

// AdminOnly rejects callers whose resolved identity is not an admin. It
// must run after SessionProtected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok {
			return unauthenticated(c)
		}
		if !identity.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden. Admins only.",
			})
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the identity resolved by SessionProtected.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityLocal).(Identity)
	return identity, ok
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Not authenticated. Please login.",
	})
}
