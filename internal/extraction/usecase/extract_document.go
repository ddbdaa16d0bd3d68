package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/prompt"
	"reminder-extractor/pkg/llm"
	"reminder-extractor/pkg/metrics"
)

// ExtractDocument first sends the document itself. When the model reports it
// cannot take attachments, the text is extracted locally exactly once and
// sent with the same system prompt. Every other failure is returned as is.
func (uc *implUseCase) ExtractDocument(ctx context.Context, input extraction.ExtractDocumentInput) (extraction.ExtractOutput, error) {
	start := time.Now()
	out, err := uc.extractDocument(ctx, input)
	uc.metrics.ObserveExtraction(extraction.SourceDocument, metrics.Outcome(err), time.Since(start))
	return out, err
}

func (uc *implUseCase) extractDocument(ctx context.Context, input extraction.ExtractDocumentInput) (extraction.ExtractOutput, error) {
	var out extraction.ExtractOutput

	warnings, err := uc.checkDocument(ctx, input.Path)
	if err != nil {
		return out, err
	}
	out.Warnings = warnings

	dc := uc.dateMath.Context(uc.cfg.Now())
	system := prompt.ForDocument(dc)
	uc.l.Infof(ctx, "ExtractDocument: path=%s today=%s", input.Path, dc.Today)

	raw, fallback, warnings, err := uc.askAboutDocument(ctx, "ExtractDocument", input.Path, input.Model,
		prompt.DocumentInstruction, system, prompt.FallbackInstruction)
	out.Fallback = fallback
	out.Warnings = joinWarnings(out.Warnings, warnings)
	if err != nil {
		return out, err
	}

	tasks, err := uc.parse(ctx, "ExtractDocument", raw)
	if err != nil {
		return out, err
	}
	out.Tasks = tasks
	return out, nil
}

// checkDocument validates path and reports a large-document warning.
func (uc *implUseCase) checkDocument(ctx context.Context, path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", extraction.ErrInvalidDocument)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrInvalidDocument, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", extraction.ErrInvalidDocument, path)
	}
	if info.Size() > uc.cfg.LargeDocumentBytes {
		uc.l.Warnf(ctx, "ExtractDocument: large document detected path=%s size=%s", path, sizeMB(info.Size()))
		return []string{fmt.Sprintf("large document (%s) may be slow or exceed the model context", sizeMB(info.Size()))}, nil
	}
	return nil, nil
}

// askAboutDocument runs the native call and, on a capability failure, the
// text fallback. fallbackUser builds the user turn from the extracted text.
// It returns the raw model text and whether the fallback ran.
func (uc *implUseCase) askAboutDocument(
	ctx context.Context,
	op, path, model, instruction, system string,
	fallbackUser func(text string) string,
) (string, bool, []string, error) {
	req, err := llm.NewDocumentRequest(path, instruction, system)
	if err != nil {
		return "", false, nil, fmt.Errorf("%w: %v", extraction.ErrInvalidDocument, err)
	}
	req.Model = model

	resp, warnings, err := uc.complete(ctx, op, req)
	if err == nil {
		return resp.Text, false, warnings, nil
	}
	if !llm.IsCapabilityError(err) {
		return "", false, nil, err
	}

	uc.l.Infof(ctx, "%s: model cannot read documents, falling back to local text extraction path=%s", op, path)
	uc.metrics.IncFallback()

	text, err := uc.extractor.ExtractText(ctx, path)
	if err != nil {
		return "", true, nil, fmt.Errorf("local text extraction: %w", err)
	}
	uc.l.Infof(ctx, "%s: extracted %d chars of text", op, len(text))

	var msgs []llm.Message
	if system != "" {
		msgs = systemAndUser(system, fallbackUser(text))
	} else {
		msgs = []llm.Message{llm.TextMessage(llm.RoleUser, fallbackUser(text))}
	}

	resp, warnings, err = uc.complete(ctx, op, llm.Request{Messages: msgs, Model: model})
	if err != nil {
		return "", true, nil, err
	}
	return resp.Text, true, warnings, nil
}
