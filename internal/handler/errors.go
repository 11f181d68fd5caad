package handler

import (
	"errors"

	"go-inventory-pro/internal/middleware"
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errInvalidJSON = fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")

// toHTTPError maps service errors onto HTTP statuses. Unknown errors are
// returned unchanged and end up as a 500 in the app error handler.
func toHTTPError(err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fiber.NewError(fiber.StatusBadRequest, vErr.Message)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidResetToken):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrSupplierNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrUserNotFound):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	return err
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "No token")
	}
	return id, nil
}
