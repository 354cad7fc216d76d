package models

// EditEntry records who edited a note and when (milliseconds since epoch).
type EditEntry struct {
	EditedBy string `json:"edited_by" yaml:"edited_by" validate:"required"`
	EditedAt int64  `json:"edited_at" yaml:"edited_at"`
}

type Note struct {
	ID          int64       `json:"id" yaml:"id" validate:"required,gte=1"`
	Title       *string     `json:"title" yaml:"title"`
	Body        *string     `json:"body" yaml:"body"`
	CreatedBy   string      `json:"created_by" yaml:"created_by"`
	CreatedAt   int64       `json:"created_at" yaml:"created_at"`
	EditHistory []EditEntry `json:"edit_history" yaml:"edit_history" validate:"dive"`
	Tags        []string    `json:"tags" yaml:"tags"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	out := *n
	if n.Title != nil {
		title := *n.Title
		out.Title = &title
	}
	if n.Body != nil {
		body := *n.Body
		out.Body = &body
	}
	out.EditHistory = append(make([]EditEntry, 0, len(n.EditHistory)), n.EditHistory...)
	out.Tags = append(make([]string, 0, len(n.Tags)), n.Tags...)
	return &out
}

type CreateNoteRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=500"`
	Body      *string `json:"body" validate:"omitempty,max=100000"`
	CreatedBy string  `json:"created_by" validate:"max=200"`
}

// UpdateNoteRequest overwrites title and body as a whole; a field left out of
// the payload clears the stored value.
type UpdateNoteRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=500"`
	Body     *string `json:"body" validate:"omitempty,max=100000"`
	EditedBy string  `json:"edited_by" validate:"max=200"`
}

// SeedFile is the on-disk format used to preload the store at startup.
type SeedFile struct {
	Notes []Note `yaml:"notes" validate:"dive"`
}
