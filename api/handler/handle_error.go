package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
	"github.com/sunthewhat/quick-cert-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	status := apperror.Status(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("Unhandled error", "path", c.Path(), "method", c.Method(), "error", err)
	}

	return c.Status(status).JSON(
		response.Error(err.Error()),
	)
}
