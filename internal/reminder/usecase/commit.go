package usecase

import (
	"context"
	"fmt"
	"strings"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/metrics"
)

// Commit makes sure the list exists, creates the reminders one by one and
// reveals the list. A failed creation stops the loop; reminders created
// before it stay in the store and are reported in the output.
func (uc *implUseCase) Commit(ctx context.Context, input reminder.CommitInput) (reminder.CommitOutput, error) {
	if len(input.Tasks) == 0 {
		return reminder.CommitOutput{}, reminder.ErrNoTasks
	}
	list := uc.listName(input.ListName)
	if strings.TrimSpace(list) == "" {
		return reminder.CommitOutput{}, reminder.ErrEmptyListName
	}

	out := reminder.CommitOutput{List: list, Created: make([]reminder.CreatedReminder, 0, len(input.Tasks))}

	exists, err := uc.store.ListExists(ctx, list)
	if err != nil {
		return out, fmt.Errorf("check list %q: %w", list, err)
	}
	if !exists {
		uc.l.Infof(ctx, "Commit: list %q not found, creating it", list)
		if err := uc.store.CreateList(ctx, list); err != nil {
			return out, fmt.Errorf("create list %q: %w", list, err)
		}
		out.ListCreated = true
	}

	ids := make([]string, 0, len(input.Tasks))
	for i, task := range input.Tasks {
		notes := reminder.ComposeNotes(task)
		task.Notes = notes

		id, err := uc.store.CreateReminder(ctx, task, list)
		uc.metrics.ObserveReminder(uc.cfg.Backend, metrics.Outcome(err))
		if err != nil {
			out.Pending = len(input.Tasks) - i - 1
			uc.l.Errorf(ctx, "Commit: reminder %d/%d %q failed: %v", i+1, len(input.Tasks), task.Title, err)
			return out, fmt.Errorf("create reminder %d of %d (%s): %w", i+1, len(input.Tasks), task.Title, err)
		}

		uc.l.Infof(ctx, "Commit: created %q id=%s list=%s", task.Title, id, list)
		out.Created = append(out.Created, reminder.CreatedReminder{ID: id, Task: task, Notes: notes})
		ids = append(ids, id)
	}

	if !input.NoReveal {
		if err := uc.store.RevealList(ctx, ids, list); err != nil {
			uc.l.Warnf(ctx, "Commit: reveal list %q failed (non-fatal): %v", list, err)
		}
	}
	return out, nil
}
