package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docvision/internal/logger"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID is a reusable middleware that ensures every request has a request ID.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header.
// - If missing, generates a new UUID.
// - Stores the value in Fiber context locals under RequestIDLocalKey and in the
//   user context, where services read it through logger.RequestIDFromContext.
// - Adds X-Request-ID to the response header with the same value.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		AssignRequestID(c)
		return c.Next()
	}
}

// AssignRequestID returns the request ID already assigned to c, or reads
// X-Request-ID (generating a UUID when absent) and stores it in locals, the user
// context and the response header.
func AssignRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDLocalKey).(string); ok && id != "" {
		return id
	}

	id := c.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals(RequestIDLocalKey, id)
	c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), id))
	c.Set(RequestIDHeader, id)

	return id
}
