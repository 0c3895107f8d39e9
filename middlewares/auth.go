package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware geçerli bir admin oturumu olmayan istekleri reddeder.
// Oturum bilgisi router'ın session middleware'i tarafından locals'a konur.
func AuthMiddleware(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminID").(uint)
	if !ok || adminID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"kind":  "auth_error",
			"error": "Bu işlem için oturum açmanız gerekiyor",
		})
	}
	return c.Next()
}
