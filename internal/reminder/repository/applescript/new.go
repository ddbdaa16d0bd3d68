// Package applescript stores reminders in macOS Reminders by running
// AppleScript through osascript.
package applescript

import (
	"time"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/command"
	"reminder-extractor/pkg/log"
)

const (
	DefaultBinary        = "osascript"
	DefaultExportTimeout = 20 * time.Second
)

type Config struct {
	Binary        string
	Location      *time.Location
	ExportTimeout time.Duration
}

type implRepository struct {
	l      log.Logger
	runner command.Runner
	cfg    Config
}

// Repository is a reminder store that can also list due reminders.
type Repository interface {
	reminder.Store
	reminder.DueLister
}

func New(l log.Logger, runner command.Runner, cfg Config) Repository {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ExportTimeout <= 0 {
		cfg.ExportTimeout = DefaultExportTimeout
	}
	return &implRepository{l: l, runner: runner, cfg: cfg}
}
