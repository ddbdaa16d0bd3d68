package usecase_test

import (
	"context"
	"errors"
	"testing"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/parser"
)

func TestExtractDocuments_FailingMiddle(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeDoc(t, dir, "a.pdf"), writeDoc(t, dir, "b.pdf"), writeDoc(t, dir, "c.pdf")}
	script := []reply{
		{text: `[{"title":"A"}]`},
		{text: "garbage"},
		{text: `[{"title":"C1"},{"title":"C2"}]`},
	}

	t.Run("continue", func(t *testing.T) {
		uc := newUseCase(t, &mockLLM{script: append([]reply(nil), script...)}, &mockExtractor{})

		out, err := uc.ExtractDocuments(context.Background(), extraction.ExtractDocumentsInput{Paths: paths})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Results) != 3 || out.Succeeded != 2 || out.Failed != 1 {
			t.Fatalf("unexpected summary %+v", out)
		}
		for i, r := range out.Results {
			if r.Path != paths[i] {
				t.Errorf("result %d out of order: %s", i, r.Path)
			}
		}
		if !errors.Is(out.Results[1].Err, parser.ErrUnparseable) || len(out.Results[1].Tasks) != 0 {
			t.Errorf("middle document should fail cleanly: %+v", out.Results[1])
		}
		tasks := out.Tasks()
		if len(tasks) != 3 || tasks[0].Title != "A" || tasks[2].Title != "C2" {
			t.Errorf("unexpected flattened tasks %+v", tasks)
		}
	})

	t.Run("stop on error", func(t *testing.T) {
		client := &mockLLM{script: append([]reply(nil), script...)}
		uc := newUseCase(t, client, &mockExtractor{})

		out, err := uc.ExtractDocuments(context.Background(), extraction.ExtractDocumentsInput{Paths: paths, StopOnError: true})
		if !errors.Is(err, parser.ErrUnparseable) {
			t.Fatalf("expected wrapped parse error, got %v", err)
		}
		if len(out.Results) != 2 || len(client.requests) != 2 {
			t.Errorf("batch should stop after the failing document: results=%d calls=%d", len(out.Results), len(client.requests))
		}
	})
}

func TestExtractDocuments_Empty(t *testing.T) {
	uc := newUseCase(t, &mockLLM{}, &mockExtractor{})
	if _, err := uc.ExtractDocuments(context.Background(), extraction.ExtractDocumentsInput{}); !errors.Is(err, extraction.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestExtractDocuments_Cancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &mockLLM{}
	uc := newUseCase(t, client, &mockExtractor{})
	_, err := uc.ExtractDocuments(ctx, extraction.ExtractDocumentsInput{Paths: []string{writeDoc(t, dir, "a.pdf")}})
	if !errors.Is(err, context.Canceled) || len(client.requests) != 0 {
		t.Errorf("expected cancellation before any call, got %v", err)
	}
}
