package setup

import (
	"fmt"
	"log/slog"
	"time"

	"notes-service/app"
	"notes-service/config"
	"notes-service/models"
	"notes-service/services"
	"notes-service/storage"
	"notes-service/tags"
)

// InitStore creates the note store and loads the seed notes
func InitStore(cfg *config.Config, logger *slog.Logger) (*storage.MemoryStore, error) {
	store := storage.NewMemoryStore()

	if cfg.SeedDisabled {
		logger.Info("note store initialized empty")
		return store, nil
	}

	var (
		seed []models.Note
		err  error
	)
	if cfg.SeedFile != "" {
		seed, err = storage.LoadSeedFile(cfg.SeedFile, time.Now())
	} else {
		seed, err = storage.DefaultSeed(time.Now())
	}
	if err != nil {
		return nil, err
	}

	if err := store.Import(seed...); err != nil {
		return nil, fmt.Errorf("import seed: %w", err)
	}

	logger.Info("note store seeded", "notes", store.Len(), "seed_file", cfg.SeedFile)
	return store, nil
}

// InitApp initializes the application with all dependencies
func InitApp(cfg *config.Config, store *storage.MemoryStore, logger *slog.Logger) (*app.App, error) {
	matcher, err := tags.NewMatcher(cfg.SearchMode)
	if err != nil {
		return nil, err
	}
	logger.Info("tag search configured", "mode", cfg.SearchMode)

	noteService := services.NewNoteService(store, matcher, logger)

	application := app.New(noteService, logger)
	logger.Info("application initialized with dependency injection")

	return application, nil
}
