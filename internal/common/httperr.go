package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperror "github.com/hamoodahalabed/book-network/internal/errors"
)

// ErrorStatus maps a service-layer failure to the HTTP status the boundary
// should answer with. Unknown errors are treated as internal.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrUserNotFound),
		errors.Is(err, apperror.ErrBookNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrOperationNotPermitted):
		return fiber.StatusForbidden
	case errors.Is(err, apperror.ErrAlreadyBorrowed),
		errors.Is(err, apperror.ErrNoOpenLoan),
		errors.Is(err, apperror.ErrNoPendingReturn):
		return fiber.StatusConflict
	case errors.Is(err, apperror.ErrAccountDisabled),
		errors.Is(err, apperror.ErrAccountLocked),
		errors.Is(err, apperror.ErrBadCredentials),
		errors.Is(err, apperror.ErrInvalidToken),
		errors.Is(err, apperror.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperror.ErrEmailAlreadyInUse):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrMailDelivery),
		errors.Is(err, apperror.ErrRoleNotConfigured):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorJSON writes the standard error envelope for a service failure.
func ErrorJSON(c *fiber.Ctx, err error) error {
	return c.Status(ErrorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
