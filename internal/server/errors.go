package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIError is a structured error response.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`    // bad_request, not_found, internal_error, ...
	Message string `json:"message"` // Human-readable message
}

func newError(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(APIError{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusMethodNotAllowed:
		return "method_not_allowed"
	case fiber.StatusRequestEntityTooLarge:
		return "payload_too_large"
	default:
		if status >= 500 {
			return "internal_error"
		}
		return "error"
	}
}

// errorHandler renders errors returned from handlers and fiber itself as
// APIError bodies. Unknown errors don't leak their message.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return newError(c, fe.Code, errorCode(fe.Code), fe.Message)
	}
	return errInternal(c, "internal server error")
}
