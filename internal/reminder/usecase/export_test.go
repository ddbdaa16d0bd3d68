package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"reminder-extractor/internal/export"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
)

func TestExport(t *testing.T) {
	reminders := []model.Reminder{
		{Title: "Invoice ACME", Notes: "[INVOICE]\nAmount: $2850.00", Due: due("2026-03-12")},
		{Title: "Pay rent", Notes: "[BILL]\nAmount: $-1500.00", Due: due("2026-03-11")},
		{Title: "Call mom", Due: due("2026-03-13")},
	}

	t.Run("default window and amounts from notes", func(t *testing.T) {
		lister := &mockLister{reminders: reminders}
		uc := newUseCase(t, newMockStore(), lister)

		var buf bytes.Buffer
		out, err := uc.Export(context.Background(), reminder.ExportInput{Output: &buf})
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		wantFrom := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		if !lister.from.Equal(wantFrom) || !lister.to.Equal(wantFrom.AddDate(0, 0, 7)) {
			t.Errorf("window = %v..%v", lister.from, lister.to)
		}
		if out.Count != 3 || out.Expenses != 1 || out.Income != 1 || out.Net != 1350 {
			t.Errorf("out = %+v", out)
		}
		csv := buf.String()
		if !strings.Contains(csv, "2026-03-11,Pay rent,-1500.00") {
			t.Errorf("csv missing expense row:\n%s", csv)
		}
		if !strings.Contains(csv, "2026-03-12,Invoice ACME,2850.00") {
			t.Errorf("csv missing income row:\n%s", csv)
		}
	})

	t.Run("explicit days and list", func(t *testing.T) {
		lister := &mockLister{}
		uc := newUseCase(t, newMockStore(), lister)

		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Export(context.Background(), reminder.ExportInput{
			ListName: "Bills", From: from, Days: 30, Layout: "ledger", Output: &bytes.Buffer{},
		})
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		if lister.list != "Bills" || !lister.to.Equal(from.AddDate(0, 0, 30)) {
			t.Errorf("list = %q to = %v", lister.list, lister.to)
		}
	})

	t.Run("store doubles as lister", func(t *testing.T) {
		ls := listerStore{mockStore: newMockStore(), mockLister: &mockLister{reminders: reminders[:1]}}
		uc := newUseCase(t, ls, nil)

		out, err := uc.Export(context.Background(), reminder.ExportInput{Output: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		if out.Count != 1 {
			t.Errorf("Count = %d, want 1", out.Count)
		}
	})

	tests := []struct {
		name   string
		lister reminder.DueLister
		input  reminder.ExportInput
		want   error
	}{
		{"no lister", nil, reminder.ExportInput{Output: &bytes.Buffer{}}, reminder.ErrExportNotSupport},
		{"no output", &mockLister{}, reminder.ExportInput{}, reminder.ErrNoOutput},
		{"bad format", &mockLister{}, reminder.ExportInput{Format: "pdf", Output: &bytes.Buffer{}}, export.ErrUnknownFormat},
		{"bad layout", &mockLister{}, reminder.ExportInput{Layout: "monthly", Output: &bytes.Buffer{}}, export.ErrUnknownLayout},
		{
			"inverted window", &mockLister{},
			reminder.ExportInput{
				From:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
				To:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				Output: &bytes.Buffer{},
			},
			reminder.ErrInvalidWindow,
		},
		{"lister error", &mockLister{err: errStore}, reminder.ExportInput{Output: &bytes.Buffer{}}, errStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, newMockStore(), tt.lister)
			if _, err := uc.Export(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
