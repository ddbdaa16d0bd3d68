package inbox

import "errors"

var (
	ErrNoDir     = errors.New("inbox directory is not set")
	ErrNoTasks   = errors.New("document produced no tasks")
	ErrScheduled = errors.New("inbox watcher already started")
)
