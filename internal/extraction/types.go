package extraction

import "reminder-extractor/internal/model"

// Source labels for metrics and logs.
const (
	SourceText     = "text"
	SourceDocument = "document"
)

// Document actions. Any quick action id is also accepted for text input.
const (
	ActionExtractTasks = "extract-tasks"
	ActionSummarize    = "summarize"
	ActionCustom       = "custom"
)

type ExtractTextInput struct {
	Text  string
	Model string // overrides the configured default when set
}

type ExtractDocumentInput struct {
	Path  string
	Model string
}

// ExtractOutput is the result of one extraction.
type ExtractOutput struct {
	Tasks    []model.Task `json:"tasks" yaml:"tasks"`
	Fallback bool         `json:"fallback,omitempty" yaml:"fallback,omitempty"` // document went through local text extraction
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type ExtractDocumentsInput struct {
	Paths       []string
	Model       string
	StopOnError bool
}

// DocumentResult is the outcome for one document of a batch. Exactly one of
// Tasks and Err is set.
type DocumentResult struct {
	Path     string
	Tasks    []model.Task
	Fallback bool
	Warnings []string
	Err      error
}

type ExtractDocumentsOutput struct {
	Results   []DocumentResult
	Succeeded int
	Failed    int
}

// Tasks returns the tasks of every successful document in input order.
func (o ExtractDocumentsOutput) Tasks() []model.Task {
	var out []model.Task
	for _, r := range o.Results {
		out = append(out, r.Tasks...)
	}
	return out
}

type ProcessInput struct {
	Action string
	Text   string   // used when Paths is empty
	Paths  []string // documents
	Prompt string   // custom action only
	Model  string
}

// ProcessOutput holds Tasks for extract-tasks and Text for every other action.
type ProcessOutput struct {
	Action  string           `json:"action" yaml:"action"`
	Text    string           `json:"text,omitempty" yaml:"text,omitempty"`
	Tasks   []model.Task     `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Results []DocumentResult `json:"-" yaml:"-"`
}
