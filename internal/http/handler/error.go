package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/contact"
	"portfolio/internal/http/middleware"
	"portfolio/internal/logging"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/storage"
	"portfolio/internal/viewstate"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
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
// - code: machine-readable short error code (e.g., "INVALID_CATEGORY", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates a domain error into the matching HTTP error.
// Validation messages are safe to return; anything unrecognized is logged and
// reported as INTERNAL_ERROR.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrUnknownCategory):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", err.Error())
	case errors.Is(err, model.ErrUnknownPage):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", err.Error())
	case errors.Is(err, model.ErrUnknownFilterMode):
		return writeError(c, fiber.StatusBadRequest, "INVALID_MODE", err.Error())
	case errors.Is(err, viewstate.ErrEmptyItemID):
		return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", err.Error())
	case errors.Is(err, viewstate.ErrUnknownOp):
		return writeError(c, fiber.StatusBadRequest, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, contact.ErrMissingField):
		return writeError(c, fiber.StatusUnprocessableEntity, "MISSING_FIELD", err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "item not found")
	case errors.Is(err, service.ErrSessionNotFound):
		return writeError(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", "session not found")
	case errors.Is(err, storage.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "media not found")
	case errors.Is(err, service.ErrSessionLimit):
		return writeError(c, fiber.StatusServiceUnavailable, "SESSION_LIMIT", "too many active sessions")
	case errors.Is(err, contact.ErrNoAddress):
		return writeError(c, fiber.StatusServiceUnavailable, "CONTACT_UNAVAILABLE", "contact is not configured")
	}

	logging.Error("http", "handler_failed", err, map[string]any{
		"request_id": requestIDFromCtx(c),
		"path":       c.Path(),
	})
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
