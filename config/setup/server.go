package setup

import (
	"errors"
	"log/slog"
	"time"

	"notes-service/config"
	"notes-service/middleware"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp creates and configures a new Fiber application
func NewFiberApp(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "notes-service",
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          CustomErrorHandler(logger),
		ReadBufferSize:        8192,
	})
}

// CustomErrorHandler renders errors that escape the handlers. Client errors
// keep their message; server errors get a generic one so internals never
// leak. The body is JSON unless the client only accepts
// plain text.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code < fiber.StatusInternalServerError {
				message = fe.Message
			}
		}

		requestID, _ := c.Locals("requestID").(string)
		if requestID != "" {
			c.Set(middleware.RequestIDHeader, requestID)
		}

		level := slog.LevelWarn
		if code >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Context(), level, "unhandled error",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		c.Status(code)
		if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextPlain) == fiber.MIMETextPlain {
			return c.SendString(message)
		}
		return c.JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
