package gcalendar

import (
	"context"
	"fmt"
	"time"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/internal/reminder/repository"
	"reminder-extractor/pkg/gcalendar"
)

func (r *implRepository) calendarID(ctx context.Context, list string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.calendars == nil {
		cals, err := r.api.ListCalendars(ctx)
		if err != nil {
			return "", false, err
		}
		r.calendars = make(map[string]string, len(cals))
		for _, c := range cals {
			if _, dup := r.calendars[c.Summary]; !dup {
				r.calendars[c.Summary] = c.ID
			}
		}
	}
	id, ok := r.calendars[list]
	return id, ok, nil
}

func (r *implRepository) ListExists(ctx context.Context, list string) (bool, error) {
	_, ok, err := r.calendarID(ctx, list)
	return ok, err
}

func (r *implRepository) CreateList(ctx context.Context, list string) error {
	id, err := r.api.CreateCalendar(ctx, list, r.timezone())
	if err != nil {
		return err
	}
	r.mu.Lock()
	if r.calendars == nil {
		r.calendars = map[string]string{}
	}
	r.calendars[list] = id
	r.mu.Unlock()

	r.l.Infof(ctx, "gcalendar.CreateList: calendar=%s id=%s", list, id)
	return nil
}

// CreateReminder creates an all-day event for date-only tasks and a short
// timed event otherwise. Tasks without a due date land on today.
func (r *implRepository) CreateReminder(ctx context.Context, task model.Task, list string) (string, error) {
	calID, ok, err := r.calendarID(ctx, list)
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %w %q", repository.ErrFailedToCreate, repository.ErrListNotFound, list)
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  calID,
		Summary:     task.Title,
		Description: task.Notes,
		Timezone:    r.timezone(),
	}
	if rule := reminder.RecurrenceRule(task.RepeatInterval); rule != "" {
		req.Recurrence = []string{rule}
	}

	due, hasTime, hasDue, err := repository.DueTime(task, r.cfg.Location)
	if err != nil {
		r.l.Warnf(ctx, "gcalendar.CreateReminder: dropping due date for %q: %v", task.Title, err)
	}
	switch {
	case hasDue && hasTime:
		req.StartTime = due
		req.EndTime = due.Add(r.cfg.EventDuration)
	case hasDue:
		req.AllDay = true
		req.Date = due.Format("2006-01-02")
	default:
		req.AllDay = true
		req.Date = time.Now().In(r.cfg.Location).Format("2006-01-02")
	}

	event, err := r.api.CreateEvent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	return event.ID, nil
}

// RevealList is a no-op for calendars.
func (r *implRepository) RevealList(ctx context.Context, ids []string, list string) error {
	return nil
}

func (r *implRepository) ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error) {
	calID, ok, err := r.calendarID(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", repository.ErrFailedToList, repository.ErrListNotFound, list)
	}

	events, err := r.api.ListEvents(ctx, gcalendar.ListEventsRequest{CalendarID: calID, TimeMin: from, TimeMax: to})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	out := make([]model.Reminder, 0, len(events))
	for _, e := range events {
		due := e.StartTime.In(r.cfg.Location)
		if e.AllDay {
			due = time.Date(e.StartTime.Year(), e.StartTime.Month(), e.StartTime.Day(), 0, 0, 0, 0, r.cfg.Location)
		}
		out = append(out, model.Reminder{
			ID:    e.ID,
			Title: e.Summary,
			Notes: e.Description,
			List:  list,
			Due:   &due,
		})
	}
	return out, nil
}
