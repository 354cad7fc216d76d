package validator

import (
	"strings"
	"testing"

	"notes-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note request",
			req:       models.CreateNoteRequest{Title: strPtr("Work"), Body: strPtr("text"), CreatedBy: "admin"},
			wantError: false,
		},
		{
			name:      "Everything omitted",
			req:       models.CreateNoteRequest{},
			wantError: false,
		},
		{
			name:      "Title too long",
			req:       models.CreateNoteRequest{Title: strPtr(strings.Repeat("a", 501))},
			wantError: true,
			errorMsg:  "title must be at most 500 characters",
		},
		{
			name:      "Creator too long",
			req:       models.CreateNoteRequest{CreatedBy: strings.Repeat("a", 201)},
			wantError: true,
			errorMsg:  "created_by must be at most 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateNote(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&models.UpdateNoteRequest{EditedBy: "bob"}))

	err := v.Validate(&models.UpdateNoteRequest{EditedBy: strings.Repeat("b", 201)})
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "edited_by", errs[0].Field)
	assert.Equal(t, "max", errs[0].Tag)
}

func TestValidator_Port(t *testing.T) {
	type portHolder struct {
		Port string `json:"port" validate:"port"`
	}

	v := New()
	for _, port := range []string{"1", "5000", "65535"} {
		assert.NoError(t, v.Validate(&portHolder{Port: port}), port)
	}
	for _, port := range []string{"0", "65536", "http", ""} {
		err := v.Validate(&portHolder{Port: port})
		require.Error(t, err, port)
		assert.Contains(t, err.Error(), "port must be a TCP port")
	}
}

func TestValidator_SeedNotes(t *testing.T) {
	v := New()

	seed := models.SeedFile{Notes: []models.Note{
		{ID: 1, EditHistory: []models.EditEntry{{EditedBy: "a"}}},
		{ID: 2, EditHistory: []models.EditEntry{{EditedAt: 1}}},
	}}

	err := v.Validate(&seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edited_by is required")
}

func TestValidator_NonStruct(t *testing.T) {
	v := New()
	assert.Error(t, v.Validate("not a struct"))
}
