// Package common provides shared response helpers and the domain error to
// HTTP status mapping for the web layer.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	domainnotif "github.com/hamzaimran/bitpro/pkg/domain/notification"
	domaintx "github.com/hamzaimran/bitpro/pkg/domain/transaction"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
)

var validate = validator.New()

// ErrorJSON writes the API's error body: {"error": message}.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// DomainErrorJSON maps a domain error to its status code and writes the
// error body from the error text.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Anything
// unrecognized is a store failure and surfaces as 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domainuser.ErrUserNotFound),
		errors.Is(err, domaintx.ErrTransactionNotFound),
		errors.Is(err, domainnotif.ErrNotificationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domainuser.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domainuser.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domainuser.ErrUserDeactivated),
		errors.Is(err, domainnotif.ErrNotRecipient):
		return fiber.StatusForbidden
	case errors.Is(err, domainuser.ErrMissingFields),
		errors.Is(err, domainuser.ErrInvalidEmail),
		errors.Is(err, domainuser.ErrPasswordTooShort),
		errors.Is(err, domaintx.ErrInvalidType),
		errors.Is(err, domaintx.ErrAmountBelowMinimum),
		errors.Is(err, domaintx.ErrProofRequired),
		errors.Is(err, domaintx.ErrInvalidStatus):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure it writes the 400 response and
// returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return &input, nil
}
