package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-service/app"
	"notes-service/config"
	"notes-service/config/setup"
	"notes-service/handlers"
	"notes-service/models"
	"notes-service/services"
	"notes-service/storage"
	"notes-service/tags"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp builds the full route table over a store holding the default
// seed notes (ids 1-3).
func setupTestApp(t *testing.T, searchMode string) (*fiber.App, *storage.MemoryStore) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := storage.NewMemoryStore()
	seed, err := storage.DefaultSeed(time.Now())
	require.NoError(t, err, "Failed to parse default seed")
	require.NoError(t, store.Import(seed...), "Failed to import seed")

	matcher, err := tags.NewMatcher(searchMode)
	require.NoError(t, err)

	application := app.New(services.NewNoteService(store, matcher, logger), logger)

	cfg := &config.Config{Env: "test", CORSOrigins: "*"}
	fiberApp := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(fiberApp, cfg, logger)
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, store
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readText(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestCreateNote(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodPost, "/notes", map[string]any{
		"title":      "Shopping",
		"body":       "eggs",
		"created_by": "alice",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	note := decode[models.Note](t, resp)
	assert.Equal(t, int64(4), note.ID)
	assert.Equal(t, "Shopping", *note.Title)
	assert.Equal(t, "eggs", *note.Body)
	assert.Equal(t, "alice", note.CreatedBy)
	assert.NotZero(t, note.CreatedAt)
	assert.Empty(t, note.Tags)
	assert.Empty(t, note.EditHistory)

	got := decode[models.Note](t, doRequest(t, fiberApp, http.MethodGet, "/notes/4", nil))
	assert.Equal(t, note, got)
}

func TestCreateNote_RawJSONShape(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodPost, "/notes", map[string]any{"created_by": "bob"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Nil(t, body["title"])
	assert.Nil(t, body["body"])
	assert.Equal(t, []any{}, body["tags"])
	assert.Equal(t, []any{}, body["edit_history"])
}

func TestCreateNote_BadRequests(t *testing.T) {
	fiberApp, store := setupTestApp(t, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: "{not json"},
		{name: "Title too long", body: `{"title":"` + string(bytes.Repeat([]byte("x"), 501)) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodPost, "/notes", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, 3, store.Len())
		})
	}
}

func TestListNotes(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	notes := decode[[]models.Note](t, resp)
	require.Len(t, notes, 3)
	assert.Equal(t, int64(1), notes[0].ID)
	assert.Equal(t, int64(3), notes[2].ID)
}

func TestGetNote(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "Existing note", path: "/notes/2", expectedStatus: http.StatusOK},
		{name: "Missing note", path: "/notes/99", expectedStatus: http.StatusNotFound},
		{name: "Leading zero is not coerced", path: "/notes/02", expectedStatus: http.StatusNotFound},
		{name: "Non-numeric id", path: "/notes/abc", expectedStatus: http.StatusNotFound},
		{name: "Zero id", path: "/notes/0", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				note := decode[models.Note](t, resp)
				assert.Equal(t, "Test Note 2", *note.Title)
			} else {
				body := decode[map[string]string](t, resp)
				assert.Equal(t, "Note not found", body["error"])
			}
		})
	}
}

func TestUpdateNote(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodPost, "/notes/2", map[string]any{"title": "Renamed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	note := decode[models.Note](t, resp)
	assert.Equal(t, "Renamed", *note.Title)
	assert.Nil(t, note.Body, "omitted body is cleared")
	assert.Len(t, note.EditHistory, 1, "no editor means no history entry")
	assert.Equal(t, int64(1631767852081), note.CreatedAt)

	resp = doRequest(t, fiberApp, http.MethodPost, "/notes/2", map[string]any{
		"title":     "Renamed again",
		"body":      "text",
		"edited_by": "carol",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	note = decode[models.Note](t, resp)
	require.Len(t, note.EditHistory, 2)
	assert.Equal(t, "carol", note.EditHistory[1].EditedBy)
	assert.Equal(t, []string{"orange", "blue", "yellow"}, note.Tags, "tags survive updates")
}

func TestUpdateNote_Errors(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodPost, "/notes/99", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodPost, "/notes/2", "[1,2")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteNote(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodDelete, "/notes/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[bool](t, resp))

	resp = doRequest(t, fiberApp, http.MethodGet, "/notes/3", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodDelete, "/notes/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[bool](t, resp))

	resp = doRequest(t, fiberApp, http.MethodDelete, "/notes/abc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[bool](t, resp))
}

func TestGetTags(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodGet, "/notes/tags/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"orange", "blue", "yellow"}, decode[[]string](t, resp))

	resp = doRequest(t, fiberApp, http.MethodGet, "/notes/tags/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{}, decode[[]string](t, resp))

	resp = doRequest(t, fiberApp, http.MethodGet, "/notes/tags/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddTags(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	tests := []struct {
		name           string
		path           string
		body           any
		expectedStatus int
		expectedTags   []string
		expectedText   string
	}{
		{
			name:           "Duplicate skipped and new tag appended",
			path:           "/notes/tags/2",
			body:           []any{"blue", "green"},
			expectedStatus: http.StatusOK,
			expectedTags:   []string{"orange", "blue", "yellow", "green"},
		},
		{
			name:           "Non-string entries ignored",
			path:           "/notes/tags/1",
			body:           []any{1, "x", nil, "x"},
			expectedStatus: http.StatusOK,
			expectedTags:   []string{"x"},
		},
		{
			name:           "Object body rejected",
			path:           "/notes/tags/2",
			body:           map[string]any{"tags": []string{"a"}},
			expectedStatus: http.StatusBadRequest,
			expectedText:   "you must pass in an array of tags",
		},
		{
			name:           "Malformed body rejected",
			path:           "/notes/tags/2",
			body:           "[oops",
			expectedStatus: http.StatusBadRequest,
			expectedText:   "you must pass in an array of tags",
		},
		{
			name:           "Missing note",
			path:           "/notes/tags/99",
			body:           "not even json",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			switch {
			case tt.expectedTags != nil:
				note := decode[models.Note](t, resp)
				assert.Equal(t, tt.expectedTags, note.Tags)
			case tt.expectedText != "":
				assert.Equal(t, tt.expectedText, readText(t, resp))
			}
		})
	}
}

func TestRemoveTags(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodDelete, "/notes/tags/3", []string{"blue", "BLUE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"red", "green"}, decode[models.Note](t, resp).Tags)

	resp = doRequest(t, fiberApp, http.MethodDelete, "/notes/tags/3", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "you must pass in an array of tags", readText(t, resp))

	resp = doRequest(t, fiberApp, http.MethodDelete, "/notes/tags/99", []string{"blue"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchNotes(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		query          string
		expectedStatus int
		expectedIDs    []int64
		expectedHeader string
	}{
		{name: "Single match", query: "yellow", expectedStatus: http.StatusOK, expectedIDs: []int64{2}, expectedHeader: "ok"},
		{name: "Case-insensitive", query: "BLUE", expectedStatus: http.StatusOK, expectedIDs: []int64{2, 3}, expectedHeader: "ok"},
		{name: "No match", query: "purple", expectedStatus: http.StatusNotFound, expectedIDs: []int64{}, expectedHeader: "no-match"},
		{name: "No query", query: "", expectedStatus: http.StatusNotFound, expectedIDs: []int64{}, expectedHeader: "no-query"},
		{name: "Substring does not match", query: "yell", expectedStatus: http.StatusNotFound, expectedIDs: []int64{}, expectedHeader: "no-match"},
		{name: "Pattern mode", mode: tags.ModePattern, query: "re.*", expectedStatus: http.StatusOK, expectedIDs: []int64{3}, expectedHeader: "ok"},
		{name: "Broken pattern", mode: tags.ModePattern, query: "(red", expectedStatus: http.StatusBadRequest, expectedHeader: "bad-pattern"},
		{name: "Glob mode", mode: tags.ModeGlob, query: "*ow", expectedStatus: http.StatusOK, expectedIDs: []int64{2}, expectedHeader: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fiberApp, _ := setupTestApp(t, tt.mode)

			target := "/notes/search"
			if tt.query != "" {
				target += "?q=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			resp, err := fiberApp.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedHeader, resp.Header.Get(handlers.SearchStatusHeader))

			if tt.expectedIDs == nil {
				return
			}
			notes := decode[[]models.Note](t, resp)
			ids := make([]int64, 0, len(notes))
			for _, n := range notes {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSearchAfterTagging(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodPost, "/notes/tags/1", []string{"Purple"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodGet, "/notes/search?q=purple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	notes := decode[[]models.Note](t, resp)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(1), notes[0].ID)
}

func TestRequestIDHeader(t *testing.T) {
	fiberApp, _ := setupTestApp(t, "")

	resp := doRequest(t, fiberApp, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
