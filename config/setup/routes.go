package setup

import (
	"notes-service/app"
	"notes-service/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes. The fixed /notes/search
// and /notes/tags paths must come before /notes/:id.
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	fiberApp.Post("/notes", handlers.CreateNote(application))
	fiberApp.Get("/notes", handlers.ListNotes(application))

	fiberApp.Get("/notes/search", handlers.SearchNotes(application))

	fiberApp.Get("/notes/tags/:id", handlers.GetTags(application))
	fiberApp.Post("/notes/tags/:id", handlers.AddTags(application))
	fiberApp.Delete("/notes/tags/:id", handlers.RemoveTags(application))

	fiberApp.Get("/notes/:id", handlers.GetNote(application))
	fiberApp.Post("/notes/:id", handlers.UpdateNote(application))
	fiberApp.Delete("/notes/:id", handlers.DeleteNote(application))
}
