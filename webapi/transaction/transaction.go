// Package transaction exposes the ledger endpoints: submission for users,
// review listing and decisions for admins.
package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/middleware"
	transactionsvc "github.com/hamzaimran/bitpro/pkg/service/transaction"
	"github.com/hamzaimran/bitpro/webapi/common"
)

// Routes registers the transaction endpoints.
func Routes(app *fiber.App, txSvc *transactionsvc.Service, store *session.Store) {
	api := app.Group("/api", middleware.SessionProtected(store))
	api.Post("/transactions", Submit(txSvc))
	api.Get("/transactions", ListOwn(txSvc))

	admin := api.Group("/admin", middleware.AdminOnly())
	admin.Get("/transactions", ListForReview(txSvc))
	admin.Patch("/transactions/:id", Review(txSvc))
}

// Submit creates a pending ledger entry for the caller.
func Submit(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		input, err := common.BindAndValidate[SubmitInput](c)
		if input == nil {
			return err
		}
		t, err := txSvc.Submit(c.Context(), identity.UserID, input.Type, input.Amount, input.Screenshot)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{
			"message":       "Transaction submitted",
			"transactionId": t.ID,
		})
	}
}

// ListOwn returns the caller's ledger entries newest-first.
func ListOwn(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		txs, err := txSvc.ListForOwner(c.Context(), identity.UserID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(txs)
	}
}

// ListForReview returns entries in the queried status (default pending),
// joined with submitter contact fields.
func ListForReview(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := txSvc.ListForReview(c.Context(), c.Query("status"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(txs)
	}
}

// Review applies an admin decision to a ledger entry.
func Review(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, "Not authenticated. Please login.")
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid transaction id")
		}
		input, err := common.BindAndValidate[ReviewInput](c)
		if input == nil {
			return err
		}
		t, err := txSvc.Review(c.Context(), identity.UserID, id, input.Status, input.Comment, input.Screenshot)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{
			"message":     "Transaction " + t.Status,
			"transaction": t,
		})
	}
}
