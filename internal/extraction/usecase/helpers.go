package usecase

import (
	"context"
	"fmt"

	"reminder-extractor/internal/extraction/parser"
	"reminder-extractor/internal/model"
	"reminder-extractor/pkg/llm"
)

const maxLoggedResponse = 500

const warnTruncated = "model response hit the token limit and may be incomplete"

// complete sends req and records usage. The returned warnings are meant
// for the caller.
func (uc *implUseCase) complete(ctx context.Context, op string, req llm.Request) (*llm.Response, []string, error) {
	resp, err := uc.llm.Complete(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: model call failed kind=%s: %v", op, llm.Classify(err), err)
		return nil, nil, err
	}

	uc.metrics.AddTokens(resp.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	uc.l.Debugf(ctx, "%s: finish_reason=%s from_reasoning=%v chars=%d", op, resp.FinishReason, resp.FromReasoning, len(resp.Text))

	var warnings []string
	if resp.Truncated() {
		uc.l.Warnf(ctx, "%s: response truncated at max_tokens", op)
		warnings = append(warnings, warnTruncated)
	}
	return resp, warnings, nil
}

// parse runs the response parser. The raw text goes to the log only.
func (uc *implUseCase) parse(ctx context.Context, op, raw string) ([]model.Task, error) {
	res, err := parser.Parse(raw)
	for _, w := range res.Warnings {
		uc.l.Warnf(ctx, "%s: %s", op, w)
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: parse failed locator=%s: %v raw=%q", op, res.Locator, err, truncate(raw, maxLoggedResponse))
		return nil, err
	}

	uc.l.Infof(ctx, "%s: extracted %d task(s) locator=%s dropped=%d", op, len(res.Tasks), res.Locator, res.Dropped)
	for i, t := range res.Tasks {
		uc.l.Debugf(ctx, "%s:   %d. %s", op, i+1, t.Summary())
	}
	return res.Tasks, nil
}

func (uc *implUseCase) temperature() *float64 {
	t := uc.cfg.ExtractionTemperature
	return &t
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func systemAndUser(system, user string) []llm.Message {
	return []llm.Message{
		llm.TextMessage(llm.RoleSystem, system),
		llm.TextMessage(llm.RoleUser, user),
	}
}

func joinWarnings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	return append(a, b...)
}

func sizeMB(n int64) string {
	return fmt.Sprintf("%.2fMB", float64(n)/1024/1024)
}
