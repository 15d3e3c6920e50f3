package handlers

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/presenters"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var errInternal = errors.New("internal error")

var badRequestErrors = []error{
	domain.ErrInvalidPhoneNumber,
	domain.ErrPhoneNumberExists,
	domain.ErrUnknownPhoneNumber,
	domain.ErrInvalidExpirationDate,
	domain.ErrInvalidSize,
	domain.ErrTokenNotFound,
	domain.ErrTokenInvalid,
}

var unauthorizedErrors = []error{
	domain.ErrWrongPassword,
	domain.ErrTokenExpired,
	domain.ErrTokenMismatch,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleServiceError is the single place an error kind becomes a status
// code. Infrastructure failures are logged and swallowed into the generic
// retry message; client errors keep their own text in meta.error.
func handleServiceError(c *fiber.Ctx, err error, message string) error {
	switch {
	case isAny(err, badRequestErrors):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case isAny(err, unauthorizedErrors):
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, message, err)
	default:
		log.Printf("%s: %v", message, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInfraFailure, errInternal)
	}
}
