package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reminder-extractor/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errStore = errors.New("store unavailable")

// mockStore keeps reminders in memory. failAt makes the n-th create (1-based) fail.
type mockStore struct {
	lists     map[string]bool
	created   []model.Task
	createdIn []string
	revealed  []string
	failAt    int
	existsErr error
	revealErr error
}

func newMockStore(lists ...string) *mockStore {
	s := &mockStore{lists: map[string]bool{}}
	for _, l := range lists {
		s.lists[l] = true
	}
	return s
}

func (s *mockStore) ListExists(ctx context.Context, list string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.lists[list], nil
}

func (s *mockStore) CreateList(ctx context.Context, list string) error {
	s.lists[list] = true
	return nil
}

func (s *mockStore) CreateReminder(ctx context.Context, task model.Task, list string) (string, error) {
	if s.failAt > 0 && len(s.created)+1 == s.failAt {
		return "", errStore
	}
	s.created = append(s.created, task)
	s.createdIn = append(s.createdIn, list)
	return fmt.Sprintf("id-%d", len(s.created)), nil
}

func (s *mockStore) RevealList(ctx context.Context, ids []string, list string) error {
	s.revealed = append(s.revealed, list)
	return s.revealErr
}

// mockLister records the window it was asked for.
type mockLister struct {
	reminders []model.Reminder
	err       error
	list      string
	from, to  time.Time
}

func (m *mockLister) ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error) {
	m.list, m.from, m.to = list, from, to
	return m.reminders, m.err
}

// listerStore is a store that can also list due reminders.
type listerStore struct {
	*mockStore
	*mockLister
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
}

func amount(v float64) *float64 { return &v }

func due(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}
