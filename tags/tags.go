// Package tags holds the stateless tag-set operations and the search
// predicate used to find notes by tag.
package tags

import (
	"errors"
	"slices"

	"notes-service/models"
)

var (
	ErrInvalidInput  = errors.New("you must pass in an array of tags")
	ErrSearchPattern = errors.New("invalid search pattern")
	ErrEmptyQuery    = errors.New("no search query supplied")
	ErrNoMatches     = errors.New("no notes match the query")
)

// AddTags appends every string in incoming that is not already present,
// comparing exactly. incoming is a decoded JSON value and must be an array;
// elements that are not strings are skipped.
func AddTags(existing []string, incoming any) ([]string, error) {
	items, ok := incoming.([]any)
	if !ok {
		return nil, ErrInvalidInput
	}

	out := append(make([]string, 0, len(existing)+len(items)), existing...)
	for _, item := range items {
		tag, ok := item.(string)
		if !ok {
			continue
		}
		if slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out, nil
}

// RemoveTags drops every tag exactly equal to a string in toRemove.
func RemoveTags(existing []string, toRemove any) ([]string, error) {
	items, ok := toRemove.([]any)
	if !ok {
		return nil, ErrInvalidInput
	}

	drop := make(map[string]struct{}, len(items))
	for _, item := range items {
		if tag, ok := item.(string); ok {
			drop[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(existing))
	for _, tag := range existing {
		if _, ok := drop[tag]; ok {
			continue
		}
		out = append(out, tag)
	}
	return out, nil
}

// Search returns the notes having at least one tag accepted by m. An empty
// query and an empty result are reported as ErrEmptyQuery and ErrNoMatches.
func Search(notes []models.Note, query string, m Matcher) ([]models.Note, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if m == nil {
		m = Exact{}
	}

	match, err := m.Compile(query)
	if err != nil {
		return nil, err
	}

	var results []models.Note
	for _, note := range notes {
		if slices.ContainsFunc(note.Tags, match) {
			results = append(results, note)
		}
	}

	if len(results) == 0 {
		return nil, ErrNoMatches
	}
	return results, nil
}
