package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard success envelope
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ListResponse writes a success envelope carrying a record count
func ListResponse(c *fiber.Ctx, data interface{}, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// ErrorResponse writes the failure envelope. err is a message string,
// or a message list for validation failures.
func ErrorResponse(c *fiber.Ctx, statusCode int, err interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   err,
	})
}

// ValidationErrorResponse reports the collected field messages
func ValidationErrorResponse(c *fiber.Ctx, messages []string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, messages)
}

// ServerErrorResponse hides internal failure detail behind a generic message
func ServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Server Error")
}
