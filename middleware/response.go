package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes a `{success: true, <key>: value}` envelope.
func SuccessResponse(c *fiber.Ctx, statusCode int, key string, value interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		key:       value,
	})
}

// MessageResponse writes a `{success: true, message}` envelope for
// operations that return no record, such as deletes.
func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// ErrorResponse writes a `{error: message}` envelope.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse writes the per-field messages of a rejected payload.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed!",
		"fields": fields,
	})
}
