package gtasks

import (
	"context"
	"fmt"
	"time"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder/repository"
	"reminder-extractor/pkg/gtasks"
)

// listID resolves a list title, loading the task lists on first use.
func (r *implRepository) listID(ctx context.Context, title string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lists == nil {
		lists, err := r.api.ListTaskLists(ctx)
		if err != nil {
			return "", false, err
		}
		r.lists = make(map[string]string, len(lists))
		for _, l := range lists {
			if _, dup := r.lists[l.Title]; !dup {
				r.lists[l.Title] = l.ID
			}
		}
	}
	id, ok := r.lists[title]
	return id, ok, nil
}

func (r *implRepository) ListExists(ctx context.Context, list string) (bool, error) {
	_, ok, err := r.listID(ctx, list)
	return ok, err
}

func (r *implRepository) CreateList(ctx context.Context, list string) error {
	id, err := r.api.CreateTaskList(ctx, list)
	if err != nil {
		return err
	}
	r.mu.Lock()
	if r.lists == nil {
		r.lists = map[string]string{}
	}
	r.lists[list] = id
	r.mu.Unlock()

	r.l.Infof(ctx, "gtasks.CreateList: list=%s id=%s", list, id)
	return nil
}

// CreateReminder inserts a task. Google Tasks keeps only the date of a due
// time, so a due time is written into the notes instead.
func (r *implRepository) CreateReminder(ctx context.Context, task model.Task, list string) (string, error) {
	id, ok, err := r.listID(ctx, list)
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %w %q", repository.ErrFailedToCreate, repository.ErrListNotFound, list)
	}

	req := gtasks.CreateTaskRequest{ListID: id, Title: task.Title, Notes: task.Notes}
	due, hasTime, hasDue, err := repository.DueTime(task, r.loc)
	if err != nil {
		r.l.Warnf(ctx, "gtasks.CreateReminder: dropping due date for %q: %v", task.Title, err)
	}
	if hasDue {
		day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		req.Due = &day
		if hasTime {
			req.Notes = appendLine(req.Notes, "Time: "+task.DueTime)
		}
	}

	created, err := r.api.CreateTask(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	return created.ID, nil
}

// RevealList is a no-op: there is no local app to bring forward.
func (r *implRepository) RevealList(ctx context.Context, ids []string, list string) error {
	return nil
}

func (r *implRepository) ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error) {
	id, ok, err := r.listID(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", repository.ErrFailedToList, repository.ErrListNotFound, list)
	}

	tasks, err := r.api.ListTasks(ctx, gtasks.ListTasksRequest{ListID: id, DueMin: from, DueMax: to})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	out := make([]model.Reminder, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed || t.Due == nil {
			continue
		}
		// due dates come back as UTC midnight; keep the calendar day
		due := time.Date(t.Due.Year(), t.Due.Month(), t.Due.Day(), 0, 0, 0, 0, r.loc)
		out = append(out, model.Reminder{
			ID:    t.ID,
			Title: t.Title,
			Notes: t.Notes,
			List:  list,
			Due:   &due,
		})
	}
	return out, nil
}

func appendLine(notes, line string) string {
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
