package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/services"
)

// RequireToken verifies the Authorization header and stores the token's
// user id in c.Locals("user_id"). Both a missing and an invalid token answer
// 403; the web client treats either as "log in again".
func RequireToken(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "access denied"})
		}

		uid, err := auth.VerifyToken(header)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "invalid token"})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
