package applescript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder/repository"
	"reminder-extractor/pkg/command"
)

func (r *implRepository) run(ctx context.Context, script string) (string, error) {
	stdout, stderr, err := r.runner.Run(ctx, r.cfg.Binary, "-e", script)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", err, command.Truncate(msg, 512))
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (r *implRepository) ListExists(ctx context.Context, list string) (bool, error) {
	out, err := r.run(ctx, listExistsScript(list))
	if err != nil {
		return false, fmt.Errorf("check list: %w", err)
	}
	return out == "true", nil
}

func (r *implRepository) CreateList(ctx context.Context, list string) error {
	if _, err := r.run(ctx, createListScript(list)); err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	r.l.Infof(ctx, "applescript.CreateList: list=%s", list)
	return nil
}

func (r *implRepository) CreateReminder(ctx context.Context, task model.Task, list string) (string, error) {
	due, hasTime, hasDue, err := repository.DueTime(task, r.cfg.Location)
	if err != nil {
		r.l.Warnf(ctx, "applescript.CreateReminder: dropping due date for %q: %v", task.Title, err)
	}

	script := createReminderScript(createParams{
		List:    list,
		Title:   task.Title,
		Notes:   task.Notes,
		Due:     due,
		HasDue:  hasDue,
		HasTime: hasTime,
	})
	id, err := r.run(ctx, script)
	if err != nil {
		if strings.Contains(err.Error(), "execution error") {
			return "", fmt.Errorf("%w: %w %q: %w", repository.ErrFailedToCreate, repository.ErrListNotFound, list, err)
		}
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	return id, nil
}

// RevealList brings Reminders to the front showing the list. The ids are
// not used: AppleScript cannot select individual reminders.
func (r *implRepository) RevealList(ctx context.Context, ids []string, list string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.run(ctx, revealScript(list))
	return err
}

func (r *implRepository) ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ExportTimeout+5*time.Second)
	defer cancel()

	out, err := r.run(ctx, dueScript(list, r.cfg.ExportTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return r.parseDue(ctx, out, list, from, to), nil
}

func (r *implRepository) parseDue(ctx context.Context, out, list string, from, to time.Time) []model.Reminder {
	var reminders []model.Reminder
	for _, rec := range strings.Split(out, recordSep) {
		rec = strings.TrimLeft(rec, "\r\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}
		fields := strings.SplitN(rec, fieldSep, 4)
		if len(fields) < 3 {
			r.l.Warnf(ctx, "applescript.ListDue: skipping malformed record %q", command.Truncate(rec, 80))
			continue
		}
		due, err := time.ParseInLocation("2006-01-02T15:04:05", fields[2], r.cfg.Location)
		if err != nil {
			r.l.Warnf(ctx, "applescript.ListDue: bad due date %q: %v", fields[2], err)
			continue
		}
		if !repository.InWindow(due, from, to) {
			continue
		}
		rem := model.Reminder{ID: fields[0], Title: fields[1], List: list, Due: &due}
		if len(fields) == 4 {
			rem.Notes = strings.TrimRight(fields[3], "\r\n")
		}
		reminders = append(reminders, rem)
	}
	return reminders
}
