package reminder

import (
	"context"
	"time"

	"reminder-extractor/internal/model"
)

// Store is the external reminders application.
type Store interface {
	// ListExists reports whether a list with exactly this name exists.
	ListExists(ctx context.Context, name string) (bool, error)
	// CreateList creates an empty list.
	CreateList(ctx context.Context, name string) error
	// CreateReminder creates one reminder in list and returns its store id.
	// task.Notes is written verbatim.
	CreateReminder(ctx context.Context, task model.Task, list string) (string, error)
	// RevealList brings the list into view. Backends without a UI may no-op.
	RevealList(ctx context.Context, ids []string, list string) error
}

// DueLister reads back incomplete reminders due in [from, to).
type DueLister interface {
	ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error)
}

// UseCase commits extracted tasks and exports due reminders.
type UseCase interface {
	Commit(ctx context.Context, input CommitInput) (CommitOutput, error)
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
