package handlers

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a domain error to its stable HTTP status and renders
// the JSON error body.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrAccountInactive):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrDuplicateEmail):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrInsufficientStock):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// validationResponse renders a 400 with one message per failed field.
func validationResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// idParam parses the numeric :id route parameter.
func idParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return uint(id), nil
}
