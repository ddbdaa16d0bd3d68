package model_test

import (
	"errors"
	"testing"

	"reminder-extractor/internal/model"
)

func TestDecodeTasks(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{name: "minimal", raw: `[{"title":"Call dentist"}]`, wantLen: 1},
		{name: "full", raw: `[{"title":"Invoice #1","notes":"Payable","dueDate":"2026-01-09","dueTime":"09:30","amount":-12.5,"repeatInterval":"monthly","isBill":true}]`, wantLen: 1},
		{name: "empty list", raw: `[]`, wantErr: true},
		{name: "missing title", raw: `[{"notes":"x"}]`, wantErr: true},
		{name: "blank title", raw: `[{"title":"   "}]`, wantErr: true},
		{name: "bad date", raw: `[{"title":"a","dueDate":"Jan 9"}]`, wantErr: true},
		{name: "amount as string", raw: `[{"title":"a","amount":"$5"}]`, wantErr: true},
		{name: "unknown interval", raw: `[{"title":"a","repeatInterval":"hourly"}]`, wantErr: true},
		{name: "not json", raw: `title: a`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := model.DecodeTasks([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidTasks) {
					t.Fatalf("expected ErrInvalidTasks, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != tt.wantLen {
				t.Errorf("expected %d tasks, got %d", tt.wantLen, len(tasks))
			}
		})
	}
}

func TestTaskSummary(t *testing.T) {
	amount := -750.0
	task := model.Task{Title: "Insurance", Amount: &amount, DueDate: "2026-01-23", DueTime: "12:00"}
	if got, want := task.Summary(), "Insurance - $-750.00 - 2026-01-23 12:00"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	zero := 0.0
	if (model.Task{Title: "x", Amount: &zero}).HasAmount() {
		t.Error("zero amount should not count as an amount")
	}
}
