package services

import "notes-service/models"

// NoteStore defines the note persistence operations the service relies on.
// storage.MemoryStore is the production implementation.
type NoteStore interface {
	Create(title, body *string, createdBy string) *models.Note
	List() []models.Note
	Get(id int64) (*models.Note, error)
	Update(id int64, title, body *string, editedBy string) (*models.Note, error)
	UpdateTags(id int64, fn func(tags []string) ([]string, error)) (*models.Note, error)
	Remove(id int64) bool
}
