package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	response := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		response["data"] = data
	}
	return c.Status(status).JSON(response)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["detail"] = err.Error()
	}
	return c.Status(status).JSON(response)
}
