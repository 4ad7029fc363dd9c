package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/storage"
)

// newLogger opens the log file. The TUI owns the terminal, so logs never
// go to stdout or stderr while playing. A log file that cannot be opened
// disables logging.
func newLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path, err := config.ExpandHome(flagLogFile); err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordfall",
		Level:           level,
	})
	return logger, closeFn
}

// loadConfig loads the config and applies an optional difficulty override.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(difficulty) != "" {
		lvl, err := config.ParseLevel(difficulty)
		if err != nil {
			return config.Config{}, err
		}
		cfg.DefaultLevel = lvl
	}
	return cfg, nil
}

// openStore opens the run history database. Failure is not fatal; the game
// still works without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newKeeper picks the high-score backend configured in storage.highscores.
func newKeeper(cfg config.Config, store *storage.Store, logger *log.Logger) (*score.Keeper, error) {
	if cfg.Storage.HighScores == config.BackendSQLite {
		if store == nil {
			return nil, fmt.Errorf("high scores are configured for sqlite but %s could not be opened", flagDBPath)
		}
		return score.NewKeeper(store, logger), nil
	}

	path, err := config.ExpandHome(flagScoresFile)
	if err != nil {
		return nil, fmt.Errorf("cannot expand %s: %w", flagScoresFile, err)
	}
	backend := score.NewFileBackend(path)
	logger.Debug("high scores", "backend", config.BackendFile, "path", backend.Path())
	return score.NewKeeper(backend, logger), nil
}
