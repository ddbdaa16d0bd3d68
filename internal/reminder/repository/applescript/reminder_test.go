package applescript_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder/repository"
	"reminder-extractor/internal/reminder/repository/applescript"
	"reminder-extractor/pkg/log"
)

// fakeRunner records scripts passed to osascript and answers with fn.
type fakeRunner struct {
	scripts []string
	fn      func(script string) (string, string, error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if name != "osascript" || len(args) != 2 || args[0] != "-e" {
		return nil, nil, errors.New("unexpected command")
	}
	f.scripts = append(f.scripts, args[1])
	out, errOut, err := f.fn(args[1])
	return []byte(out), []byte(errOut), err
}

func newRepo(runner *fakeRunner) applescript.Repository {
	return applescript.New(log.NewNop(), runner, applescript.Config{Location: time.UTC})
}

func TestListExists(t *testing.T) {
	tests := []struct {
		out  string
		want bool
	}{
		{"true\n", true},
		{"false\n", false},
	}
	for _, tt := range tests {
		runner := &fakeRunner{fn: func(string) (string, string, error) { return tt.out, "", nil }}
		got, err := newRepo(runner).ListExists(context.Background(), `Bills "2026"`)
		if err != nil {
			t.Fatalf("ListExists: %v", err)
		}
		if got != tt.want {
			t.Errorf("ListExists() = %v, want %v", got, tt.want)
		}
		if !strings.Contains(runner.scripts[0], `exists list "Bills \"2026\""`) {
			t.Errorf("script not escaped: %s", runner.scripts[0])
		}
	}
}

func TestCreateReminder(t *testing.T) {
	t.Run("timed due date and escaped fields", func(t *testing.T) {
		runner := &fakeRunner{fn: func(string) (string, string, error) {
			return "x-apple-reminder://ABC\n", "", nil
		}}
		task := model.Task{
			Title:   `Pay "ACME" \ invoice`,
			Notes:   "Amount: $50.00",
			DueDate: "2026-03-10",
			DueTime: "15:30",
		}
		id, err := newRepo(runner).CreateReminder(context.Background(), task, "Bills")
		if err != nil {
			t.Fatalf("CreateReminder: %v", err)
		}
		if id != "x-apple-reminder://ABC" {
			t.Errorf("id = %q", id)
		}
		script := runner.scripts[0]
		for _, want := range []string{
			`name:"Pay \"ACME\" \\ invoice"`,
			`body:"Amount: $50.00"`,
			"set year of dueDate to 2026",
			"set month of dueDate to 3",
			"set day of dueDate to 10",
			"set time of dueDate to 55800",
			"due date:dueDate",
			`tell list "Bills"`,
			"return id of newReminder",
		} {
			if !strings.Contains(script, want) {
				t.Errorf("script missing %q:\n%s", want, script)
			}
		}
	})

	t.Run("no due date and no notes", func(t *testing.T) {
		runner := &fakeRunner{fn: func(string) (string, string, error) { return "id", "", nil }}
		if _, err := newRepo(runner).CreateReminder(context.Background(), model.Task{Title: "Call mom"}, "To Do"); err != nil {
			t.Fatalf("CreateReminder: %v", err)
		}
		script := runner.scripts[0]
		if strings.Contains(script, "dueDate") || strings.Contains(script, "body:") {
			t.Errorf("unexpected properties:\n%s", script)
		}
	})

	t.Run("execution error means missing list", func(t *testing.T) {
		runner := &fakeRunner{fn: func(string) (string, string, error) {
			return "", "execution error: Can't get list \"Nope\". (-1728)", errors.New("exit status 1")
		}}
		_, err := newRepo(runner).CreateReminder(context.Background(), model.Task{Title: "x"}, "Nope")
		if !errors.Is(err, repository.ErrListNotFound) || !errors.Is(err, repository.ErrFailedToCreate) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestRevealList(t *testing.T) {
	runner := &fakeRunner{fn: func(string) (string, string, error) { return "", "", nil }}
	repo := newRepo(runner)

	if err := repo.RevealList(context.Background(), nil, "Bills"); err != nil {
		t.Fatalf("RevealList: %v", err)
	}
	if len(runner.scripts) != 0 {
		t.Fatal("revealed with no reminders")
	}
	if err := repo.RevealList(context.Background(), []string{"a"}, "Bills"); err != nil {
		t.Fatalf("RevealList: %v", err)
	}
	if !strings.Contains(runner.scripts[0], `show list "Bills"`) {
		t.Errorf("script = %s", runner.scripts[0])
	}
}

func TestListDue(t *testing.T) {
	out := strings.Join([]string{
		"id1|||Pay rent|||2026-03-11T09:00:00|||[BILL]\nAmount: $-1500.00",
		"id2|||Later|||2026-04-30T00:00:00|||",
		"garbage",
		"id3|||Invoice|||2026-03-12T00:00:00|||Amount: $2850.00",
		"",
	}, "\x1e")
	runner := &fakeRunner{fn: func(string) (string, string, error) { return out, "", nil }}

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := newRepo(runner).ListDue(context.Background(), "Bills", from, from.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reminders, want 2: %+v", len(got), got)
	}
	if got[0].Title != "Pay rent" || got[0].Notes != "[BILL]\nAmount: $-1500.00" || got[0].List != "Bills" {
		t.Errorf("first = %+v", got[0])
	}
	if !got[1].Due.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second due = %v", got[1].Due)
	}
	if !strings.Contains(runner.scripts[0], "whose completed is false") {
		t.Errorf("script = %s", runner.scripts[0])
	}
}
