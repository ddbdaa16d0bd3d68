// Package repository holds the reminder store backends.
package repository

import "errors"

var (
	ErrListNotFound   = errors.New("reminder list not found")
	ErrFailedToCreate = errors.New("failed to create reminder")
	ErrFailedToList   = errors.New("failed to list reminders")
	ErrBadDueDate     = errors.New("invalid due date")
)
