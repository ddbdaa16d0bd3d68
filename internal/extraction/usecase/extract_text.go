package usecase

import (
	"context"
	"strings"
	"time"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/prompt"
	"reminder-extractor/pkg/llm"
	"reminder-extractor/pkg/metrics"
)

// ExtractText classifies the input, builds the matching system prompt and
// parses a single low-temperature completion. There is no fallback.
func (uc *implUseCase) ExtractText(ctx context.Context, input extraction.ExtractTextInput) (extraction.ExtractOutput, error) {
	start := time.Now()
	out, err := uc.extractText(ctx, input)
	uc.metrics.ObserveExtraction(extraction.SourceText, metrics.Outcome(err), time.Since(start))
	return out, err
}

func (uc *implUseCase) extractText(ctx context.Context, input extraction.ExtractTextInput) (extraction.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyInput
	}

	dc := uc.dateMath.Context(uc.cfg.Now())
	uc.l.Infof(ctx, "ExtractText: input_length=%d simple=%v today=%s", len(input.Text), prompt.IsSimple(input.Text), dc.Today)

	resp, warnings, err := uc.complete(ctx, "ExtractText", llm.Request{
		Messages:    systemAndUser(prompt.ForText(dc, input.Text), prompt.TextUserMessage(input.Text)),
		Model:       input.Model,
		Temperature: uc.temperature(),
		MaxTokens:   uc.cfg.ExtractionMaxTokens,
	})
	if err != nil {
		return extraction.ExtractOutput{}, err
	}

	tasks, err := uc.parse(ctx, "ExtractText", resp.Text)
	if err != nil {
		return extraction.ExtractOutput{}, err
	}
	return extraction.ExtractOutput{Tasks: tasks, Warnings: warnings}, nil
}
