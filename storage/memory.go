package storage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"notes-service/models"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidID    = errors.New("invalid note id")
	ErrDuplicateID  = errors.New("duplicate note id")
)

// MemoryStore keeps every note in process memory. It is constructed once at
// startup and handed to the services that need it.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[int64]*models.Note
	maxID int64
	now   func() time.Time
}

type Option func(*MemoryStore)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		notes: make(map[int64]*models.Note),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) timestamp() int64 {
	return s.now().UnixMilli()
}

// Create stores a new note under max(existing ids)+1.
func (s *MemoryStore) Create(title, body *string, createdBy string) *models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxID++
	note := &models.Note{
		ID:          s.maxID,
		Title:       title,
		Body:        body,
		CreatedBy:   createdBy,
		CreatedAt:   s.timestamp(),
		EditHistory: []models.EditEntry{},
		Tags:        []string{},
	}
	s.notes[note.ID] = note.Clone()

	return note.Clone()
}

// List returns a snapshot of all notes ordered by id.
func (s *MemoryStore) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		notes = append(notes, *note.Clone())
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes
}

func (s *MemoryStore) Get(id int64) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return note.Clone(), nil
}

// Update replaces title and body with the given values, nil included. An
// edit history entry is only recorded when editedBy is not empty.
func (s *MemoryStore) Update(id int64, title, body *string, editedBy string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}

	updated := note.Clone()
	updated.Title, updated.Body = nil, nil
	if title != nil {
		t := *title
		updated.Title = &t
	}
	if body != nil {
		b := *body
		updated.Body = &b
	}
	if editedBy != "" {
		updated.EditHistory = append(updated.EditHistory, models.EditEntry{
			EditedBy: editedBy,
			EditedAt: s.timestamp(),
		})
	}
	s.notes[id] = updated

	return updated.Clone(), nil
}

// UpdateTags runs fn against the note's current tags while holding the write
// lock and stores whatever it returns. An error from fn leaves the note as is.
func (s *MemoryStore) UpdateTags(id int64, fn func(tags []string) ([]string, error)) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}

	current := append(make([]string, 0, len(note.Tags)), note.Tags...)
	tags, err := fn(current)
	if err != nil {
		return nil, err
	}

	updated := note.Clone()
	updated.Tags = append(make([]string, 0, len(tags)), tags...)
	s.notes[id] = updated

	return updated.Clone(), nil
}

// Remove reports whether a note was deleted. Missing ids are not an error.
func (s *MemoryStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return false
	}
	delete(s.notes, id)

	if id == s.maxID {
		s.maxID = 0
		for existing := range s.notes {
			if existing > s.maxID {
				s.maxID = existing
			}
		}
	}
	return true
}

// Import loads notes that already carry an id, e.g. from a seed file. Nothing
// is stored if any id is invalid or already taken.
func (s *MemoryStore) Import(notes ...models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(notes))
	for _, note := range notes {
		if note.ID < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidID, note.ID)
		}
		if _, taken := s.notes[note.ID]; taken {
			return fmt.Errorf("%w: %d", ErrDuplicateID, note.ID)
		}
		if _, dup := seen[note.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, note.ID)
		}
		seen[note.ID] = struct{}{}
	}

	for _, note := range notes {
		stored := note.Clone()
		if stored.CreatedAt == 0 {
			stored.CreatedAt = s.timestamp()
		}
		s.notes[stored.ID] = stored
		if stored.ID > s.maxID {
			s.maxID = stored.ID
		}
	}
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
