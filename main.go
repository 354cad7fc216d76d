package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-service/config"
	"notes-service/config/setup"

	"github.com/spf13/cobra"
)

var flags struct {
	port       string
	env        string
	seedFile   string
	searchMode string
	noSeed     bool
}

// rootCmd starts the HTTP server when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "notes-service",
	Short:         "In-memory note service with tag search",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return serve(cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.port, "port", "", "listen port (overrides PORT)")
	f.StringVar(&flags.env, "env", "", "development, production or test (overrides ENV)")
	f.StringVar(&flags.seedFile, "seed-file", "", "YAML file with initial notes (overrides SEED_FILE)")
	f.StringVar(&flags.searchMode, "search-mode", "", "exact, pattern or glob (overrides SEARCH_MODE)")
	f.BoolVar(&flags.noSeed, "no-seed", false, "start with an empty store")

	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.port
	}
	if cmd.Flags().Changed("env") {
		cfg.Env = flags.env
	}
	if cmd.Flags().Changed("seed-file") {
		cfg.SeedFile = flags.seedFile
	}
	if cmd.Flags().Changed("search-mode") {
		cfg.SearchMode = flags.searchMode
	}
	if flags.noSeed {
		cfg.SeedDisabled = true
	}
}

func serve(cfg *config.Config) error {
	logger := setupLogger(cfg)

	store, err := setup.InitStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	application, err := setup.InitApp(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}

	app := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(app, cfg, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
