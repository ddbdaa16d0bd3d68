package inbox

import (
	"context"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/reminder"
)

// Watcher polls a drop folder and files every document it finds.
type Watcher interface {
	// ScanOnce processes the documents currently in the folder, one at a time.
	ScanOnce(ctx context.Context) (ScanResult, error)
	// Start schedules ScanOnce every interval, starting now.
	Start(ctx context.Context) error
	// Stop waits for a running scan and stops the schedule.
	Stop() error
}

// Extractor is the part of extraction.UseCase the watcher needs.
type Extractor interface {
	ExtractDocument(ctx context.Context, input extraction.ExtractDocumentInput) (extraction.ExtractOutput, error)
}

// Committer is the part of reminder.UseCase the watcher needs.
type Committer interface {
	Commit(ctx context.Context, input reminder.CommitInput) (reminder.CommitOutput, error)
}
