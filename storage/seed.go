package storage

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"notes-service/models"
	"notes-service/validator"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed returns the built-in notes.
func DefaultSeed(now time.Time) ([]models.Note, error) {
	return ParseSeed(defaultSeed, now)
}

// LoadSeedFile reads a YAML seed file from disk.
func LoadSeedFile(path string, now time.Time) ([]models.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data, now)
}

// ParseSeed decodes and validates seed notes. Zero timestamps are set to now
// and tags are deduplicated the same way AddTags would.
func ParseSeed(data []byte, now time.Time) ([]models.Note, error) {
	var seed models.SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	if err := validator.New().Validate(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	ms := now.UnixMilli()
	notes := make([]models.Note, 0, len(seed.Notes))
	for _, note := range seed.Notes {
		if note.CreatedAt == 0 {
			note.CreatedAt = ms
		}
		history := make([]models.EditEntry, 0, len(note.EditHistory))
		for _, entry := range note.EditHistory {
			if entry.EditedAt == 0 {
				entry.EditedAt = ms
			}
			history = append(history, entry)
		}
		note.EditHistory = history
		note.Tags = dedupe(note.Tags)
		notes = append(notes, note)
	}
	return notes, nil
}

func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
