package handlers

import (
	"notes-service/app"
	"notes-service/models"

	"github.com/gofiber/fiber/v2"
)

// CreateNote stores a new note from {title, body, created_by}
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		return success(c, a.Notes.Create(req))
	}
}

// ListNotes returns every note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, a.Notes.List())
	}
}

// GetNote returns a single note or 404
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return notFound(c, "Note not found")
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return noteError(c, a, "Failed to fetch note", err)
		}

		return success(c, note)
	}
}

// UpdateNote overwrites title and body and records the editor, if any
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return notFound(c, "Note not found")
		}

		var req models.UpdateNoteRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Update(id, req)
		if err != nil {
			return noteError(c, a, "Failed to update note", err)
		}

		return success(c, note)
	}
}

// DeleteNote answers true when a note was removed and false otherwise
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return success(c, false)
		}

		return success(c, a.Notes.Remove(id))
	}
}
