package handlers

import (
	"errors"

	"notes-service/app"
	"notes-service/services"

	"github.com/gofiber/fiber/v2"
)

// SearchStatusHeader tells a missing query apart from an empty result; both
// answer 404 with an empty array.
const SearchStatusHeader = "X-Search-Status"

// SearchNotes supports ?q=tag and returns the notes carrying a matching tag
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := a.Notes.Search(c.Query("q"))
		switch {
		case err == nil:
			c.Set(SearchStatusHeader, "ok")
			return success(c, results)
		case errors.Is(err, services.ErrEmptyQuery):
			c.Set(SearchStatusHeader, "no-query")
			return c.Status(fiber.StatusNotFound).JSON([]any{})
		case errors.Is(err, services.ErrNoMatches):
			c.Set(SearchStatusHeader, "no-match")
			return c.Status(fiber.StatusNotFound).JSON([]any{})
		case errors.Is(err, services.ErrSearchPattern):
			c.Set(SearchStatusHeader, "bad-pattern")
			return badRequestText(c, err.Error())
		default:
			return serverErrorWithDetails(c, a.Logger, "Failed to search notes", err)
		}
	}
}
