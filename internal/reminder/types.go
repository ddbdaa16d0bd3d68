package reminder

import (
	"io"
	"time"

	"reminder-extractor/internal/model"
)

// Backend names.
const (
	BackendAppleScript = "applescript"
	BackendGoogleTasks = "gtasks"
	BackendCalendar    = "gcalendar"
	BackendAppleDB     = "appledb"
)

type CommitInput struct {
	Tasks    []model.Task
	ListName string // empty uses the configured default
	NoReveal bool
}

// CreatedReminder pairs a task with the id the store assigned.
type CreatedReminder struct {
	ID    string     `json:"id" yaml:"id"`
	Task  model.Task `json:"task" yaml:"task"`
	Notes string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// CommitOutput lists what was created, also on partial failure.
type CommitOutput struct {
	List        string            `json:"list" yaml:"list"`
	ListCreated bool              `json:"listCreated,omitempty" yaml:"listCreated,omitempty"`
	Created     []CreatedReminder `json:"created" yaml:"created"`
	Pending     int               `json:"pending,omitempty" yaml:"pending,omitempty"` // tasks not attempted after a failure
}

type ExportInput struct {
	ListName string
	From     time.Time // zero means start of today
	To       time.Time // zero means From plus Days
	Days     int       // default 7
	Format   string    // csv or xlsx
	Layout   string    // split or ledger
	Output   io.Writer
}

type ExportOutput struct {
	List     string  `json:"list"`
	Count    int     `json:"count"`
	Expenses int     `json:"expenses"`
	Income   int     `json:"income"`
	Net      float64 `json:"net"`
}
