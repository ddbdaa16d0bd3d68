package reminder

import "errors"

var (
	ErrNoTasks          = errors.New("no tasks to create")
	ErrEmptyListName    = errors.New("reminder list name is empty")
	ErrExportNotSupport = errors.New("reminder backend cannot list due reminders")
	ErrNoOutput         = errors.New("export output is nil")
	ErrInvalidWindow    = errors.New("export window end is before its start")
)
