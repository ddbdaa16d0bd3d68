// Package appledb reads due reminders straight from the Reminders Core Data
// sqlite stores on macOS. It is read-only and serves exports.
package appledb

import (
	"time"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/log"
)

const DefaultGlob = "~/Library/Reminders/Container_v1/Stores/Data-*.sqlite"

// coreDataEpoch is 2001-01-01T00:00:00Z in Unix seconds.
const coreDataEpoch = 978307200

type Config struct {
	Glob     string
	Location *time.Location
}

type implRepository struct {
	l   log.Logger
	cfg Config
}

func New(l log.Logger, cfg Config) reminder.DueLister {
	if cfg.Glob == "" {
		cfg.Glob = DefaultGlob
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &implRepository{l: l, cfg: cfg}
}

func toCoreData(t time.Time) float64 {
	return float64(t.Unix()-coreDataEpoch) + float64(t.Nanosecond())/1e9
}

func fromCoreData(v float64, loc *time.Location) time.Time {
	sec := int64(v)
	nsec := int64((v - float64(sec)) * 1e9)
	return time.Unix(sec+coreDataEpoch, nsec).In(loc)
}
