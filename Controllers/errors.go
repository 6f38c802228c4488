package Controllers

import (
	"errors"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError translates a core error kind into an HTTP response.
func respondError(c *fiber.Ctx, err error) error {
	var stateErr *Models.StateTransitionError
	var workerErr *Models.UnauthorizedWorkerError
	var stockErr *Models.InsufficientStockError

	switch {
	case errors.Is(err, Models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	case errors.As(err, &stateErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "Invalid state transition",
			"message": stateErr.Error(),
		})
	case errors.As(err, &workerErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "Not assigned to this order",
			"message": workerErr.Error(),
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     "Insufficient stock",
			"message":   stockErr.Error(),
			"material":  stockErr.MaterialName,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.Is(err, Models.ErrConsistency):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal consistency violation",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
}
