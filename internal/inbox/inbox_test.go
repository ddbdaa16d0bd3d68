package inbox_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/inbox"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/log"
)

var errModel = errors.New("model endpoint down")

type mockExtractor struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
	empty map[string]bool
}

func (m *mockExtractor) ExtractDocument(ctx context.Context, in extraction.ExtractDocumentInput) (extraction.ExtractOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := filepath.Base(in.Path)
	m.calls = append(m.calls, name)
	if err := m.fail[name]; err != nil {
		return extraction.ExtractOutput{}, err
	}
	if m.empty[name] {
		return extraction.ExtractOutput{}, nil
	}
	return extraction.ExtractOutput{Tasks: []model.Task{{Title: "Pay " + name, DueDate: "2026-03-15"}}}, nil
}

func (m *mockExtractor) called() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type mockCommitter struct {
	inputs []reminder.CommitInput
	err    error
}

func (m *mockCommitter) Commit(ctx context.Context, in reminder.CommitInput) (reminder.CommitOutput, error) {
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return reminder.CommitOutput{}, m.err
	}
	out := reminder.CommitOutput{List: in.ListName}
	for i, t := range in.Tasks {
		out.Created = append(out.Created, reminder.CreatedReminder{ID: string(rune('a' + i)), Task: t})
	}
	return out, nil
}

func seed(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("%PDF-1.4 test"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func later() time.Time { return time.Now().Add(time.Hour) }

func TestScanOnce(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "b-invoice.pdf", "a-bill.PDF", "c-broken.pdf", "d-empty.png", "notes.txt", ".hidden.pdf")

	ext := &mockExtractor{
		fail:  map[string]error{"c-broken.pdf": errModel},
		empty: map[string]bool{"d-empty.png": true},
	}
	com := &mockCommitter{}
	w, err := inbox.New(log.NewNop(), ext, com, inbox.Config{Dir: dir, ListName: "Bills", Now: later})
	if err != nil {
		t.Fatal(err)
	}

	res, err := w.ScanOnce(context.Background())
	if err != nil {
		t.Fatalf("ScanOnce: %v", err)
	}
	if res.Processed != 2 || res.Failed != 2 {
		t.Fatalf("processed=%d failed=%d, want 2 and 2", res.Processed, res.Failed)
	}

	wantOrder := []string{"a-bill.PDF", "b-invoice.pdf", "c-broken.pdf", "d-empty.png"}
	if strings.Join(ext.calls, ",") != strings.Join(wantOrder, ",") {
		t.Errorf("extraction order = %v, want %v", ext.calls, wantOrder)
	}
	if len(com.inputs) != 2 || com.inputs[0].ListName != "Bills" || !com.inputs[0].NoReveal {
		t.Errorf("commits = %+v", com.inputs)
	}

	for _, n := range []string{"a-bill.PDF", "b-invoice.pdf"} {
		if !exists(filepath.Join(dir, inbox.ProcessedDir, n)) {
			t.Errorf("%s not moved to processed", n)
		}
		if !exists(filepath.Join(dir, inbox.ProcessedDir, n+".tasks.yaml")) {
			t.Errorf("%s has no sidecar", n)
		}
	}
	for _, n := range []string{"c-broken.pdf", "d-empty.png"} {
		if !exists(filepath.Join(dir, inbox.FailedDir, n)) {
			t.Errorf("%s not moved to failed", n)
		}
	}
	for _, r := range res.Files {
		if r.Name == "d-empty.png" && !errors.Is(r.Err, inbox.ErrNoTasks) {
			t.Errorf("empty document err = %v", r.Err)
		}
		if r.Name == "c-broken.pdf" && !errors.Is(r.Err, errModel) {
			t.Errorf("broken document err = %v", r.Err)
		}
	}
	if !exists(filepath.Join(dir, "notes.txt")) || !exists(filepath.Join(dir, ".hidden.pdf")) {
		t.Error("non-documents must stay in place")
	}

	// Nothing left to do on a second pass.
	res, err = w.ScanOnce(context.Background())
	if err != nil || len(res.Files) != 0 {
		t.Errorf("second scan = %+v, %v", res, err)
	}
}

func TestScanOnce_CommitFailure(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "bill.pdf")

	com := &mockCommitter{err: errors.New("list not found")}
	w, _ := inbox.New(log.NewNop(), &mockExtractor{}, com, inbox.Config{Dir: dir, Now: later})

	res, err := w.ScanOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed != 1 || !exists(filepath.Join(dir, inbox.FailedDir, "bill.pdf")) {
		t.Errorf("result = %+v", res)
	}
}

func TestScanOnce_NameCollision(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, inbox.ProcessedDir), 0o755); err != nil {
		t.Fatal(err)
	}
	seed(t, dir, "bill.pdf", filepath.Join(inbox.ProcessedDir, "bill.pdf"))

	now := time.Now().Add(time.Hour).Truncate(time.Second)
	w, _ := inbox.New(log.NewNop(), &mockExtractor{}, nil, inbox.Config{
		Dir: dir,
		Now: func() time.Time { return now },
	})

	res, err := w.ScanOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, inbox.ProcessedDir, "bill-"+now.Format("20060102-150405")+".pdf")
	if len(res.Files) != 1 || res.Files[0].MovedTo != want {
		t.Fatalf("files = %+v, want move to %s", res.Files, want)
	}
	if res.Files[0].Created != 0 || res.Files[0].Tasks != 1 {
		t.Errorf("without a committer only tasks are counted: %+v", res.Files[0])
	}
}

func TestScanOnce_SkipsFreshFiles(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "bill.pdf")

	ext := &mockExtractor{}
	w, _ := inbox.New(log.NewNop(), ext, nil, inbox.Config{Dir: dir, MinAge: time.Hour})

	res, err := w.ScanOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Skipped != 1 || ext.called() != 0 {
		t.Errorf("fresh file processed: %+v", res)
	}
}

func TestNew_RequiresDir(t *testing.T) {
	if _, err := inbox.New(log.NewNop(), &mockExtractor{}, nil, inbox.Config{}); !errors.Is(err, inbox.ErrNoDir) {
		t.Errorf("err = %v, want ErrNoDir", err)
	}
}

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "bill.pdf")

	ext := &mockExtractor{}
	w, _ := inbox.New(log.NewNop(), ext, nil, inbox.Config{Dir: dir, Interval: time.Hour, Now: later})

	ctx := context.Background()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Start(ctx); !errors.Is(err, inbox.ErrScheduled) {
		t.Errorf("second Start err = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for ext.called() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if ext.called() != 1 {
		t.Errorf("scan ran %d times, want 1 immediately after Start", ext.called())
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
