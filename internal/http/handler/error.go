package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docvision/internal/http/middleware"
	"docvision/internal/inference"
	"docvision/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "MISSING_INPUT", "BACKEND_FAILURE")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// errorMessages holds the user-facing messages of one endpoint.
type errorMessages struct {
	missingInput string
	internal     string
}

var (
	extractMessages = errorMessages{
		missingInput: "Imagem ausente",
		internal:     "Erro interno ao processar documento",
	}
	compareMessages = errorMessages{
		missingInput: "Faltam imagens para comparar",
		internal:     "Erro interno ao processar biometria",
	}
)

// writeServiceError translates a service error into the HTTP error envelope.
func writeServiceError(c *fiber.Ctx, msgs errorMessages, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingInput):
		return writeError(c, fiber.StatusBadRequest, "MISSING_INPUT", msgs.missingInput)
	case errors.Is(err, service.ErrInvalidImage):
		return writeError(c, fiber.StatusBadRequest, "INVALID_IMAGE", "Imagem inválida")
	case errors.Is(err, service.ErrUnsupportedMode):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_MODE", "Modo inválido ou não especificado")
	case errors.Is(err, service.ErrMalformedResponse):
		return writeError(c, fiber.StatusInternalServerError, "MALFORMED_RESPONSE", "Falha ao interpretar resposta da IA")
	case errors.Is(err, service.ErrBackendFailure):
		var apiErr *inference.APIError
		if errors.As(err, &apiErr) && apiErr.Safe() {
			return writeError(c, fiber.StatusInternalServerError, "BACKEND_FAILURE", apiErr.Message)
		}
		return writeError(c, fiber.StatusInternalServerError, "BACKEND_FAILURE", msgs.internal)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", msgs.internal)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Errors raised by the server before routing (such as an oversized body) never pass
// through the middleware chain, so the request ID and CORS headers are applied here as well.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		middleware.AssignRequestID(c)
		middleware.SetCORSHeaders(c)

		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "Requisição inválida")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "Recurso não encontrado")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "Método não permitido")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "Corpo da requisição excede o limite")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
	}
}
