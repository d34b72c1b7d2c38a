package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	config "github.com/gorimarket/talent-api/configs"
	"github.com/gorimarket/talent-api/messages"
)

// Protected validates the bearer token minted by the auth service and
// stashes it in c.Locals("user"). This API never issues tokens itself.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"detail": "Invalid or expired JWT"})
}

// StaffRequired gates the verification endpoints on the is_staff claim.
func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)

		isStaff, _ := claims["is_staff"].(bool)
		if !isStaff {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": messages.NoPermission,
			})
		}
		return c.Next()
	}
}
