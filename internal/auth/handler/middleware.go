package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsUserID   = "userID"
	LocalsEmail    = "email"
	LocalsFullName = "fullName"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request locals for downstream handlers.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or malformed authorization header",
			})
		}

		claims, err := h.tokenService.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsEmail, claims.Email)
		c.Locals(LocalsFullName, claims.FullName)

		return c.Next()
	}
}

// UserID retrieves the authenticated caller's id set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}
