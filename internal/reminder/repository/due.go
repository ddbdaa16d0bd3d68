package repository

import (
	"fmt"
	"time"

	"reminder-extractor/internal/model"
)

// DueTime resolves a task's dueDate and dueTime in loc. hasTime is false
// for date-only tasks. ok is false when the task has no due date.
func DueTime(task model.Task, loc *time.Location) (due time.Time, hasTime bool, ok bool, err error) {
	if task.DueDate == "" {
		return time.Time{}, false, false, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if task.DueTime == "" {
		d, err := time.ParseInLocation("2006-01-02", task.DueDate, loc)
		if err != nil {
			return time.Time{}, false, false, fmt.Errorf("%w: %q", ErrBadDueDate, task.DueDate)
		}
		return d, false, true, nil
	}
	d, err := time.ParseInLocation("2006-01-02 15:04", task.DueDate+" "+task.DueTime, loc)
	if err != nil {
		return time.Time{}, false, false, fmt.Errorf("%w: %q %q", ErrBadDueDate, task.DueDate, task.DueTime)
	}
	return d, true, true, nil
}

// InWindow reports whether t falls in [from, to).
func InWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
