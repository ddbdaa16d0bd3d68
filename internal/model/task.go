package model

import "fmt"

// RepeatInterval is the recurrence of a reminder.
type RepeatInterval string

const (
	RepeatNone    RepeatInterval = ""
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
	RepeatYearly  RepeatInterval = "yearly"
)

// Valid reports whether r is empty or one of the known intervals.
func (r RepeatInterval) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// Task is one reminder or payment obligation extracted from user input.
type Task struct {
	Title          string         `json:"title" yaml:"title"`
	Notes          string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	DueDate        string         `json:"dueDate,omitempty" yaml:"dueDate,omitempty"` // YYYY-MM-DD
	DueTime        string         `json:"dueTime,omitempty" yaml:"dueTime,omitempty"` // HH:MM, 24h
	Amount         *float64       `json:"amount,omitempty" yaml:"amount,omitempty"`
	RepeatInterval RepeatInterval `json:"repeatInterval,omitempty" yaml:"repeatInterval,omitempty"`
	IsInvoice      bool           `json:"isInvoice,omitempty" yaml:"isInvoice,omitempty"`
	IsBill         bool           `json:"isBill,omitempty" yaml:"isBill,omitempty"`
}

// HasAmount reports whether the task carries a non-zero amount.
func (t Task) HasAmount() bool {
	return t.Amount != nil && *t.Amount != 0
}

// Summary renders a one-line description: title, amount and due date.
func (t Task) Summary() string {
	s := t.Title
	if t.HasAmount() {
		s += fmt.Sprintf(" - $%.2f", *t.Amount)
	}
	if t.DueDate != "" {
		s += " - " + t.DueDate
		if t.DueTime != "" {
			s += " " + t.DueTime
		}
	}
	return s
}
