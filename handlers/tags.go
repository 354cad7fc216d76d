package handlers

import (
	"notes-service/app"

	"github.com/gofiber/fiber/v2"
)

// GetTags returns the tags of a note, [] when it has none
func GetTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return notFound(c, "Note not found")
		}

		tags, err := a.Notes.Tags(id)
		if err != nil {
			return noteError(c, a, "Failed to fetch tags", err)
		}

		return success(c, tags)
	}
}

// AddTags merges a JSON array of tags into a note
func AddTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return notFound(c, "Note not found")
		}

		note, err := a.Notes.AddTags(id, tagPayload(c))
		if err != nil {
			return noteError(c, a, "Failed to add tags", err)
		}

		return success(c, note)
	}
}

// RemoveTags drops the tags listed in a JSON array from a note
func RemoveTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return notFound(c, "Note not found")
		}

		note, err := a.Notes.RemoveTags(id, tagPayload(c))
		if err != nil {
			return noteError(c, a, "Failed to remove tags", err)
		}

		return success(c, note)
	}
}

// tagPayload decodes the request body into a generic JSON value. Malformed
// JSON yields nil, which the tag operations reject as not being an array
// once the note itself has been found.
func tagPayload(c *fiber.Ctx) any {
	var payload any
	if err := decodeBody(c, &payload); err != nil {
		return nil
	}
	return payload
}
