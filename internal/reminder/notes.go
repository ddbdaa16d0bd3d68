package reminder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"reminder-extractor/internal/model"
)

var amountRe = regexp.MustCompile(`Amount:\s*\$?(-?[\d,]+(?:\.\d+)?)`)

// ComposeNotes builds the reminder body from a task: an "Amount: $X.XX"
// line ahead of the notes, then [INVOICE] and [BILL] markers, then a
// "Recurs:" line for repeating tasks.
func ComposeNotes(t model.Task) string {
	notes := t.Notes
	if t.HasAmount() {
		amount := fmt.Sprintf("Amount: $%.2f", *t.Amount)
		if notes != "" {
			notes = amount + "\n\n" + notes
		} else {
			notes = amount
		}
	}
	if t.IsInvoice {
		notes = prefixLine("[INVOICE]", notes)
	}
	if t.IsBill {
		notes = prefixLine("[BILL]", notes)
	}
	if t.RepeatInterval != model.RepeatNone {
		recurs := "Recurs: " + string(t.RepeatInterval)
		if notes != "" {
			notes += "\n" + recurs
		} else {
			notes = recurs
		}
	}
	return notes
}

func prefixLine(prefix, notes string) string {
	if notes == "" {
		return prefix
	}
	return prefix + "\n" + notes
}

// AmountFromNotes recovers the amount written by ComposeNotes.
func AmountFromNotes(notes string) (float64, bool) {
	m := amountRe.FindStringSubmatch(notes)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// RecurrenceRule returns the RFC 5545 rule for an interval, or "" for none.
func RecurrenceRule(r model.RepeatInterval) string {
	if r == model.RepeatNone || !r.Valid() {
		return ""
	}
	return "RRULE:FREQ=" + strings.ToUpper(string(r))
}
