package model

import "time"

// Reminder is a reminder read back from a store, used for export.
type Reminder struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Notes     string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	List      string     `json:"list,omitempty" yaml:"list,omitempty"`
	Due       *time.Time `json:"due,omitempty" yaml:"due,omitempty"`
	Amount    *float64   `json:"amount,omitempty" yaml:"amount,omitempty"` // recovered from the notes
	Completed bool       `json:"completed" yaml:"completed"`
}
