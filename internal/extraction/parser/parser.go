// Package parser turns raw model output into validated tasks.
//
// Models wrap JSON in prose or code fences, return a bare object instead of
// an array, and invent dates. Parse recovers the JSON, keeps every record
// with a title and clears due dates that are malformed or outside
// [MinYear, MaxYear].
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"reminder-extractor/internal/model"
)

const (
	MinYear = 2020
	MaxYear = 2100
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Result carries the surviving tasks plus diagnostics for logging.
type Result struct {
	Tasks    []model.Task
	Locator  string
	Dropped  int
	Warnings []string
}

// Parse recovers tasks from raw. It returns ErrUnparseable when no JSON can
// be decoded and ErrNoValidTasks when nothing survives validation; a nil
// error always comes with at least one task.
func Parse(raw string) (Result, error) {
	candidate, locator := Locate(raw)
	res := Result{Locator: locator}

	var doc any
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return res, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	var records []any
	switch v := doc.(type) {
	case []any:
		records = v
	default:
		records = []any{v}
	}

	for i, r := range records {
		obj, ok := r.(map[string]any)
		if !ok {
			res.Dropped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("record %d: not an object", i))
			continue
		}
		task, warnings, ok := toTask(obj)
		for _, w := range warnings {
			res.Warnings = append(res.Warnings, fmt.Sprintf("record %d: %s", i, w))
		}
		if !ok {
			res.Dropped++
			continue
		}
		res.Tasks = append(res.Tasks, task)
	}

	if len(res.Tasks) == 0 {
		return res, ErrNoValidTasks
	}
	return res, nil
}

func toTask(obj map[string]any) (model.Task, []string, bool) {
	var warnings []string

	title, _ := obj["title"].(string)
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, []string{"missing or blank title, dropped"}, false
	}

	t := model.Task{
		Title:   title,
		Notes:   stringField(obj["notes"]),
		DueTime: strings.TrimSpace(stringField(obj["dueTime"])),
	}

	if date := strings.TrimSpace(stringField(obj["dueDate"])); date != "" {
		if reason := checkDate(date); reason != "" {
			warnings = append(warnings, fmt.Sprintf("dueDate %q %s, cleared", date, reason))
		} else {
			t.DueDate = date
		}
	}

	if raw, present := obj["amount"]; present && raw != nil {
		amount, err := coerceAmount(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("amount %v ignored: %v", raw, err))
		} else {
			t.Amount = &amount
		}
	}

	if raw, present := obj["repeatInterval"]; present && raw != nil {
		interval := model.RepeatInterval(strings.ToLower(strings.TrimSpace(stringField(raw))))
		if interval == "none" {
			interval = model.RepeatNone
		}
		if interval.Valid() {
			t.RepeatInterval = interval
		} else {
			warnings = append(warnings, fmt.Sprintf("repeatInterval %v unknown, cleared", raw))
		}
	}

	t.IsInvoice = coerceBool(obj["isInvoice"])
	t.IsBill = coerceBool(obj["isBill"])

	return t, warnings, true
}

// checkDate returns "" for an acceptable date and the reason otherwise.
func checkDate(date string) string {
	if !dateRe.MatchString(date) {
		return "is not YYYY-MM-DD"
	}
	// calendar validity is left to the stores
	if y, _ := strconv.Atoi(date[:4]); y < MinYear || y > MaxYear {
		return fmt.Sprintf("has year %d outside [%d,%d]", y, MinYear, MaxYear)
	}
	return ""
}

func stringField(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	}
	return ""
}

// coerceAmount accepts JSON numbers and strings such as "$-1,200.50" or "-$75".
func coerceAmount(v any) (float64, error) {
	switch x := v.(type) {
	case json.Number:
		return x.Float64()
	case string:
		s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(x))
		if s == "" {
			return 0, errors.New("empty")
		}
		return strconv.ParseFloat(s, 64)
	}
	return 0, fmt.Errorf("unsupported type %T", v)
}

func coerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if s == "yes" {
			return true
		}
		b, _ := strconv.ParseBool(s)
		return b
	}
	return false
}
