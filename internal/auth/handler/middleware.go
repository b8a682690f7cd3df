package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userContextKey = "user"

// RequireAuth gates protected routes. A missing bearer token is 401; a token
// that fails verification for any reason, expiry included, is 403.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const prefix = "Bearer "

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access token is required",
			})
		}

		result := h.tokens.VerifyAccessToken(strings.TrimPrefix(header, prefix))
		if !result.Valid {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(userContextKey, result.Claims)

		return c.Next()
	}
}
