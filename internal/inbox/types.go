package inbox

import "time"

const (
	DefaultInterval = time.Minute
	DefaultMinAge   = 2 * time.Second

	ProcessedDir = "processed"
	FailedDir    = "failed"

	// tasksSuffix names the sidecar written next to each processed document.
	tasksSuffix = ".tasks.yaml"
)

// FileResult is the outcome for one document.
type FileResult struct {
	Name    string
	Tasks   int
	Created int
	MovedTo string
	Err     error
}

type ScanResult struct {
	Files     []FileResult
	Processed int
	Failed    int
	Skipped   int // too new or not a document
}
