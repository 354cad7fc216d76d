package services

import (
	"errors"
	"log/slog"

	"notes-service/models"
	"notes-service/tags"
)

// NoteService handles business logic for notes and their tags
type NoteService struct {
	store   NoteStore
	matcher tags.Matcher
	logger  *slog.Logger
}

// NewNoteService creates a new note service. A nil matcher falls back to
// case-insensitive exact matching.
func NewNoteService(store NoteStore, matcher tags.Matcher, logger *slog.Logger) *NoteService {
	if matcher == nil {
		matcher = tags.Exact{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		store:   store,
		matcher: matcher,
		logger:  logger,
	}
}

func (ns *NoteService) Create(req models.CreateNoteRequest) *models.Note {
	note := ns.store.Create(req.Title, req.Body, req.CreatedBy)
	ns.logger.Info("note created", "note_id", note.ID, "created_by", note.CreatedBy)
	return note
}

func (ns *NoteService) List() []models.Note {
	return ns.store.List()
}

func (ns *NoteService) Get(id int64) (*models.Note, error) {
	return ns.store.Get(id)
}

// Update overwrites title and body; see models.UpdateNoteRequest.
func (ns *NoteService) Update(id int64, req models.UpdateNoteRequest) (*models.Note, error) {
	note, err := ns.store.Update(id, req.Title, req.Body, req.EditedBy)
	if err != nil {
		return nil, err
	}

	ns.logger.Info("note updated", "note_id", id, "edited_by", req.EditedBy, "history", len(note.EditHistory))
	return note, nil
}

func (ns *NoteService) Remove(id int64) bool {
	removed := ns.store.Remove(id)
	if removed {
		ns.logger.Info("note removed", "note_id", id)
	}
	return removed
}

// Tags returns the tag list of a note, never nil.
func (ns *NoteService) Tags(id int64) ([]string, error) {
	note, err := ns.store.Get(id)
	if err != nil {
		return nil, err
	}
	if note.Tags == nil {
		return []string{}, nil
	}
	return note.Tags, nil
}

// AddTags merges a decoded JSON payload into the note's tags.
func (ns *NoteService) AddTags(id int64, payload any) (*models.Note, error) {
	note, err := ns.store.UpdateTags(id, func(current []string) ([]string, error) {
		return tags.AddTags(current, payload)
	})
	if err != nil {
		return nil, err
	}

	ns.logger.Debug("tags added", "note_id", id, "tags", note.Tags)
	return note, nil
}

// RemoveTags deletes the tags named in a decoded JSON payload.
func (ns *NoteService) RemoveTags(id int64, payload any) (*models.Note, error) {
	note, err := ns.store.UpdateTags(id, func(current []string) ([]string, error) {
		return tags.RemoveTags(current, payload)
	})
	if err != nil {
		return nil, err
	}

	ns.logger.Debug("tags removed", "note_id", id, "tags", note.Tags)
	return note, nil
}

// Search finds notes with a tag matching query.
func (ns *NoteService) Search(query string) ([]models.Note, error) {
	results, err := tags.Search(ns.store.List(), query, ns.matcher)
	if errors.Is(err, ErrSearchPattern) {
		ns.logger.Warn("rejected search pattern", "query", query, "error", err)
	}
	return results, err
}
