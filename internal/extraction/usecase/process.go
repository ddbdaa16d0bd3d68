package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/prompt"
	"reminder-extractor/pkg/llm"
)

const documentSeparator = "\n\n---\n\n"

// Process dispatches an action. With Paths it works on documents and accepts
// extract-tasks, summarize and custom. Without Paths it works on Text and
// additionally accepts every quick action id.
func (uc *implUseCase) Process(ctx context.Context, input extraction.ProcessInput) (extraction.ProcessOutput, error) {
	action := strings.ToLower(strings.TrimSpace(input.Action))
	if action == "" {
		action = extraction.ActionExtractTasks
	}
	out := extraction.ProcessOutput{Action: action}

	if action == extraction.ActionCustom && strings.TrimSpace(input.Prompt) == "" {
		return out, extraction.ErrEmptyPrompt
	}

	if len(input.Paths) > 0 {
		return uc.processDocuments(ctx, action, input, out)
	}
	return uc.processText(ctx, action, input, out)
}

func (uc *implUseCase) processDocuments(ctx context.Context, action string, input extraction.ProcessInput, out extraction.ProcessOutput) (extraction.ProcessOutput, error) {
	var instruction string
	switch action {
	case extraction.ActionExtractTasks:
		res, err := uc.ExtractDocuments(ctx, extraction.ExtractDocumentsInput{Paths: input.Paths, Model: input.Model})
		out.Results = res.Results
		out.Tasks = res.Tasks()
		return out, err
	case extraction.ActionSummarize:
		instruction = prompt.SummarizeInstruction
	case extraction.ActionCustom:
		instruction = input.Prompt
	default:
		return out, extraction.ErrUnknownAction
	}

	parts := make([]string, 0, len(input.Paths))
	for _, path := range input.Paths {
		if _, err := uc.checkDocument(ctx, path); err != nil {
			return out, err
		}
		text, _, _, err := uc.askAboutDocument(ctx, "Process", path, input.Model, instruction, "",
			func(extracted string) string { return prompt.Compose(instruction, extracted) })
		if err != nil {
			return out, err
		}
		if len(input.Paths) > 1 {
			text = "## " + filepath.Base(path) + "\n\n" + text
		}
		parts = append(parts, text)
	}

	out.Text = strings.Join(parts, documentSeparator)
	return out, nil
}

func (uc *implUseCase) processText(ctx context.Context, action string, input extraction.ProcessInput, out extraction.ProcessOutput) (extraction.ProcessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return out, extraction.ErrEmptyInput
	}

	var instruction string
	switch action {
	case extraction.ActionExtractTasks:
		res, err := uc.ExtractText(ctx, extraction.ExtractTextInput{Text: input.Text, Model: input.Model})
		out.Tasks = res.Tasks
		return out, err
	case extraction.ActionCustom:
		instruction = input.Prompt
	default:
		a, err := prompt.Lookup(action)
		if err != nil {
			return out, extraction.ErrUnknownAction
		}
		instruction = a.Prompt
	}

	uc.l.Infof(ctx, "Process: action=%s input_length=%d", action, len(input.Text))
	resp, _, err := uc.complete(ctx, "Process", llm.Request{
		Messages: []llm.Message{llm.TextMessage(llm.RoleUser, prompt.Compose(instruction, input.Text))},
		Model:    input.Model,
	})
	if err != nil {
		return out, err
	}
	out.Text = strings.TrimSpace(resp.Text)
	return out, nil
}

// Models lists the identifiers served by the endpoint.
func (uc *implUseCase) Models(ctx context.Context) ([]string, error) {
	models, err := uc.llm.Models(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Models: discovery failed: %v", err)
		return nil, err
	}
	return models, nil
}
