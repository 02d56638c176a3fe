package middleware

import "github.com/gofiber/fiber/v2"

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS allows every origin to call the POST endpoints.
// Any OPTIONS request is answered with 200 and an empty body, before routing.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		SetCORSHeaders(c)

		if c.Method() == fiber.MethodOptions {
			// SendStatus would write the status text as the body.
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}

// SetCORSHeaders writes the CORS response headers. The global error handler
// calls it too, since some errors are raised before the middleware chain runs.
func SetCORSHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
}
