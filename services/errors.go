package services

import (
	"notes-service/storage"
	"notes-service/tags"
)

// Errors surfaced to handlers. They alias the storage and tags sentinels so
// errors.Is works against either name.
var (
	ErrNoteNotFound  = storage.ErrNoteNotFound
	ErrInvalidInput  = tags.ErrInvalidInput
	ErrSearchPattern = tags.ErrSearchPattern
	ErrEmptyQuery    = tags.ErrEmptyQuery
	ErrNoMatches     = tags.ErrNoMatches
)
