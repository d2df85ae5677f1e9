package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeai/platform/internal/core/domain"
)

// writeError maps domain errors to HTTP statuses and renders the error
// envelope. Unrecognized errors are logged and reported as 500 without
// leaking internals.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status = fiber.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrEmptyResponse):
		status = fiber.StatusBadGateway
		msg = err.Error()
	default:
		slog.Error("internal error", "error", err)
	}

	return c.Status(status).JSON(fiber.Map{"error": msg})
}
