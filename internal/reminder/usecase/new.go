package usecase

import (
	"time"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/datemath"
	pkgLog "reminder-extractor/pkg/log"
	"reminder-extractor/pkg/metrics"
)

const (
	DefaultListName   = "To Do"
	DefaultExportDays = 7
)

type Config struct {
	Backend     string // metrics label
	DefaultList string
	Now         func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	store    reminder.Store
	lister   reminder.DueLister
	dateMath *datemath.Parser
	metrics  metrics.Recorder
	cfg      Config
}

// New creates the reminder UseCase. lister may be nil, in which case Export
// uses store when it implements reminder.DueLister.
func New(
	l pkgLog.Logger,
	store reminder.Store,
	lister reminder.DueLister,
	dateMath *datemath.Parser,
	recorder metrics.Recorder,
	cfg Config,
) reminder.UseCase {
	if cfg.DefaultList == "" {
		cfg.DefaultList = DefaultListName
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if lister == nil {
		if dl, ok := store.(reminder.DueLister); ok {
			lister = dl
		}
	}
	return &implUseCase{
		l:        l,
		store:    store,
		lister:   lister,
		dateMath: dateMath,
		metrics:  recorder,
		cfg:      cfg,
	}
}

func (uc *implUseCase) listName(name string) string {
	if name == "" {
		return uc.cfg.DefaultList
	}
	return name
}
