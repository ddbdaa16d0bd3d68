package prompt

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownAction is returned by Lookup for an unregistered id.
var ErrUnknownAction = errors.New("unknown action")

// Action is a canned text transformation.
type Action struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

const remindersToCSVPrompt = `Parse these reminders into a CSV table with three columns: Date (YYYY-MM-DD format), Subject, Amount.

Rules:
1. Dates in YYYY-MM-DD format
2. No amount given -> 0
3. Bills and expenses are negative numbers
4. Income and payments received are positive numbers
5. Split into TWO tables: EXPENSES and INCOME
6. Include CSV headers

Example input:
- Electric bill $150 due Jan 15
- Client payment $5000 on Jan 10
- Rent $2000 due Jan 20

Expected output:

EXPENSES:
Date,Subject,Amount
2025-01-15,Electric bill,-150.00
2025-01-20,Rent,-2000.00

INCOME:
Date,Subject,Amount
2025-01-10,Client payment,5000.00

Now parse these reminders:`

var actions = map[string]Action{
	"summarize":         {ID: "summarize", Title: "Summarize", Prompt: "Summarize this text concisely:"},
	"improve":           {ID: "improve", Title: "Improve Writing", Prompt: "Improve the writing of this text while maintaining its meaning:"},
	"grammar":           {ID: "grammar", Title: "Fix Grammar", Prompt: "Fix any grammar and spelling errors in this text:"},
	"professional":      {ID: "professional", Title: "Make Professional", Prompt: "Rewrite this text in a professional tone:"},
	"casual":            {ID: "casual", Title: "Make Casual", Prompt: "Rewrite this text in a casual, friendly tone:"},
	"expand":            {ID: "expand", Title: "Expand", Prompt: "Expand on this text with more details and examples:"},
	"shorten":           {ID: "shorten", Title: "Shorten", Prompt: "Make this text more concise while keeping key points:"},
	"explain":           {ID: "explain", Title: "Explain", Prompt: "Explain this text in simple terms:"},
	"translate-spanish": {ID: "translate-spanish", Title: "Translate to Spanish", Prompt: "Translate this text to Spanish:"},
	"bullet-points":     {ID: "bullet-points", Title: "Convert to Bullet Points", Prompt: "Convert this text into clear bullet points:"},
	"reminders-to-csv":  {ID: "reminders-to-csv", Title: "Reminders to CSV Table", Prompt: remindersToCSVPrompt},
}

// Lookup returns the action registered under id.
func Lookup(id string) (Action, error) {
	a, ok := actions[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Action{}, ErrUnknownAction
	}
	return a, nil
}

// Actions lists every action ordered by id.
func Actions() []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Compose joins an instruction and its subject text into one user turn.
func Compose(instruction, text string) string {
	return instruction + "\n\n" + text
}
