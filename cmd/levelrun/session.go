package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelrun/internal/config"
	"github.com/vovakirdan/levelrun/internal/levels"
)

// loadSession loads and validates the session config and builds its catalog.
func loadSession() (config.SessionConfig, *levels.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SessionConfig{}, nil, err
	}
	catalog, err := levels.NewCatalog(cfg.Levels)
	if err != nil {
		return config.SessionConfig{}, nil, err
	}
	return cfg, catalog, nil
}

// newLogger creates the structured logger for a command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the log file used while the alternate screen is active.
// Logging to the terminal would corrupt the display.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
