// Package prompt builds the system prompts and user turns sent to the model.
// Everything here is a pure function of its inputs.
package prompt

import (
	"fmt"
	"strings"

	"reminder-extractor/pkg/datemath"
)

// IsSimple reports whether input reads like a plain reminder rather than
// invoice or payment text: no "$", no "invoice" and no "net " in any case.
func IsSimple(input string) bool {
	lower := strings.ToLower(input)
	return !strings.Contains(input, "$") &&
		!strings.Contains(lower, "invoice") &&
		!strings.Contains(lower, "net ")
}

// ForText returns the system prompt for free text input.
func ForText(dc datemath.DateContext, input string) string {
	if IsSimple(input) {
		return render(simpleTemplate, dc)
	}
	return render(invoiceTemplate, dc)
}

// ForDocument returns the system prompt for invoice documents, used on both
// the native and the fallback path.
func ForDocument(dc datemath.DateContext) string {
	return render(documentTemplate, dc)
}

// TextUserMessage wraps input in the fixed text-path user turn.
func TextUserMessage(input string) string {
	return fmt.Sprintf(textUserTemplate, input)
}

// FallbackInstruction is the user turn carrying extracted document text.
func FallbackInstruction(text string) string {
	return fallbackPrefix + text
}

func render(tmpl string, dc datemath.DateContext) string {
	return fmt.Sprintf(tmpl, dc.Today, dc.Tomorrow, dc.Year, dc.Net(30), dc.Net(60))
}
