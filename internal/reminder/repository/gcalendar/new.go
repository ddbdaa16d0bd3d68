// Package gcalendar stores reminders as Google Calendar events. A reminder
// list maps to the calendar whose summary matches its name.
package gcalendar

import (
	"context"
	"sync"
	"time"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/gcalendar"
	"reminder-extractor/pkg/log"
)

const DefaultEventDuration = 30 * time.Minute

type API interface {
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
	CreateCalendar(ctx context.Context, summary, timezone string) (string, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type Config struct {
	Location      *time.Location
	EventDuration time.Duration
}

type Repository interface {
	reminder.Store
	reminder.DueLister
}

type implRepository struct {
	l   log.Logger
	api API
	cfg Config

	mu        sync.Mutex
	calendars map[string]string // summary -> id
}

func New(l log.Logger, api API, cfg Config) Repository {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	return &implRepository{l: l, api: api, cfg: cfg}
}

// timezone is the IANA name sent with events, empty for the process-local zone.
func (r *implRepository) timezone() string {
	if r.cfg.Location == time.Local {
		return ""
	}
	return r.cfg.Location.String()
}
