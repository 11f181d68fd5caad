package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ErrOriginNotAllowed is returned for browser requests from foreign origins.
var ErrOriginNotAllowed = fiber.NewError(fiber.StatusForbidden, "CORS policy: This origin is not allowed")

// RestrictOrigin rejects requests whose Origin header is set and differs from
// allowed. Requests without an Origin (curl, server to server) pass. An
// allowed value of "*" disables the check.
func RestrictOrigin(allowed string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if allowed == "*" || origin == "" || origin == allowed {
			return c.Next()
		}
		return ErrOriginNotAllowed
	}
}
