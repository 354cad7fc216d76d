package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"notes-service/app"
	"notes-service/services"
	"notes-service/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// badRequestText answers with a plain-text body, as tag and search clients expect.
func badRequestText(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).SendString(message)
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": errs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	logger.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// noteError maps service errors onto responses.
func noteError(c *fiber.Ctx, a *app.App, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrInvalidInput):
		return badRequestText(c, services.ErrInvalidInput.Error())
	default:
		return serverErrorWithDetails(c, a.Logger, message, err)
	}
}

// noteID parses the :id route parameter. Only canonical decimal ids are
// accepted, so "01" or "+1" never resolve to note 1.
func noteID(c *fiber.Ctx) (int64, bool) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 || strconv.FormatInt(id, 10) != raw {
		return 0, false
	}
	return id, true
}

// decodeBody unmarshals a JSON body regardless of Content-Type. An empty body
// leaves v untouched.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, v)
}
