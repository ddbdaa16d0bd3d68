package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/usecase"
	"reminder-extractor/pkg/datemath"
	"reminder-extractor/pkg/llm"
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

type reply struct {
	text string
	err  error
}

// mockLLM answers from a script, one reply per call, and records requests.
type mockLLM struct {
	mu       sync.Mutex
	script   []reply
	requests []llm.Request
	models   []string
}

func (m *mockLLM) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if len(m.script) == 0 {
		return nil, llm.ErrNoChoices
	}
	r := m.script[0]
	m.script = m.script[1:]
	if r.err != nil {
		return nil, r.err
	}
	return &llm.Response{Text: r.text, FinishReason: "stop", Model: "test-model"}, nil
}

func (m *mockLLM) Models(ctx context.Context) ([]string, error) {
	return m.models, nil
}

func (m *mockLLM) Model() string { return "test-model" }

type mockExtractor struct {
	calls int
	paths []string
	text  string
	err   error
}

func (m *mockExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	m.calls++
	m.paths = append(m.paths, path)
	return m.text, m.err
}

var fixedNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, client llm.Client, ex extraction.TextExtractor) extraction.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return usecase.New(&mockLogger{}, client, ex, dm, nil, usecase.Config{
		Now: func() time.Time { return fixedNow },
	})
}

func writeDoc(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("%PDF-1.4 test"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func capabilityError() error {
	return &llm.APIError{StatusCode: 500, Body: `{"error":"image input is not supported - hint: you may need to provide the mmproj"}`}
}
