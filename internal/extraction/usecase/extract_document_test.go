package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/parser"
	"reminder-extractor/internal/extraction/prompt"
	"reminder-extractor/pkg/llm"
)

func TestExtractDocument_Native(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "invoice.pdf")
	client := &mockLLM{script: []reply{{text: `[{"title":"Invoice #236 - Eaton Processing","dueDate":"2026-01-08","amount":46028.64}]`}}}
	ex := &mockExtractor{}
	uc := newUseCase(t, client, ex)

	out, err := uc.ExtractDocument(context.Background(), extraction.ExtractDocumentInput{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Fallback || ex.calls != 0 {
		t.Errorf("native success must not touch the extractor (fallback=%v calls=%d)", out.Fallback, ex.calls)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("unexpected tasks %+v", out.Tasks)
	}

	req := client.requests[0]
	if len(req.Messages) != 2 {
		t.Fatalf("expected system + user turns, got %d", len(req.Messages))
	}
	user := req.Messages[1]
	if len(user.Parts) != 2 || user.Parts[0].Text != prompt.DocumentInstruction {
		t.Fatalf("unexpected user parts %+v", user.Parts)
	}
	if !strings.HasPrefix(user.Parts[1].ImageURL, "data:application/pdf;base64,") {
		t.Errorf("document not attached as a data URI: %.40s", user.Parts[1].ImageURL)
	}
	if !strings.Contains(req.Messages[0].Content, "Today is 2026-03-10") {
		t.Error("document prompt lacks the date context")
	}
}

func TestExtractDocument_CapabilityFallback(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "scan.pdf")
	client := &mockLLM{script: []reply{
		{err: capabilityError()},
		{text: `[{"title":"Invoice #789 - ABC Supplies","amount":-5200}]`},
	}}
	ex := &mockExtractor{text: "Invoice #789 from ABC Supplies"}
	uc := newUseCase(t, client, ex)

	out, err := uc.ExtractDocument(context.Background(), extraction.ExtractDocumentInput{Path: path, Model: "small"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.calls != 1 || ex.paths[0] != path {
		t.Errorf("expected exactly one extractor call for %s, got %v", path, ex.paths)
	}
	if !out.Fallback {
		t.Error("expected fallback flag")
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "Invoice #789 - ABC Supplies" || *out.Tasks[0].Amount != -5200 {
		t.Errorf("expected the parse of the second response, got %+v", out.Tasks)
	}

	if len(client.requests) != 2 {
		t.Fatalf("expected two model calls, got %d", len(client.requests))
	}
	second := client.requests[1]
	if second.Model != "small" {
		t.Errorf("model override lost on fallback: %q", second.Model)
	}
	if second.Messages[0].Content != client.requests[0].Messages[0].Content {
		t.Error("fallback must reuse the same system prompt")
	}
	if second.Messages[1].Content != prompt.FallbackInstruction("Invoice #789 from ABC Supplies") || len(second.Messages[1].Parts) != 0 {
		t.Errorf("unexpected fallback user turn %+v", second.Messages[1])
	}
}

func TestExtractDocument_Failures(t *testing.T) {
	extractErr := errors.New("tesseract: not found")

	tcs := map[string]struct {
		script     []reply
		ex         *mockExtractor
		check      func(error) bool
		extractorN int
	}{
		"http error propagates without fallback": {
			script:     []reply{{err: &llm.APIError{StatusCode: 503, Body: "loading model"}}},
			ex:         &mockExtractor{},
			check:      func(err error) bool { return llm.Classify(err) == llm.FailureHTTP },
			extractorN: 0,
		},
		"transport error propagates without fallback": {
			script: []reply{{err: &llm.ConnectionError{Endpoint: "x", Err: errors.New("refused")}}},
			ex:     &mockExtractor{},
			check: func(err error) bool {
				var ce *llm.ConnectionError
				return errors.As(err, &ce)
			},
		},
		"extractor failure": {
			script:     []reply{{err: capabilityError()}},
			ex:         &mockExtractor{err: extractErr},
			check:      func(err error) bool { return errors.Is(err, extractErr) },
			extractorN: 1,
		},
		"fallback answer unparseable": {
			script:     []reply{{err: capabilityError()}, {text: "no idea"}},
			ex:         &mockExtractor{text: "text"},
			check:      func(err error) bool { return errors.Is(err, parser.ErrUnparseable) },
			extractorN: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			path := writeDoc(t, t.TempDir(), "doc.pdf")
			uc := newUseCase(t, &mockLLM{script: tc.script}, tc.ex)

			_, err := uc.ExtractDocument(context.Background(), extraction.ExtractDocumentInput{Path: path})
			if err == nil || !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.ex.calls != tc.extractorN {
				t.Errorf("expected %d extractor calls, got %d", tc.extractorN, tc.ex.calls)
			}
		})
	}
}

func TestExtractDocument_InvalidPath(t *testing.T) {
	client := &mockLLM{}
	uc := newUseCase(t, client, &mockExtractor{})

	for _, p := range []string{"", "/does/not/exist.pdf", t.TempDir()} {
		_, err := uc.ExtractDocument(context.Background(), extraction.ExtractDocumentInput{Path: p})
		if !errors.Is(err, extraction.ErrInvalidDocument) {
			t.Errorf("path %q: expected ErrInvalidDocument, got %v", p, err)
		}
	}
	if len(client.requests) != 0 {
		t.Error("invalid paths must not reach the model")
	}
}
