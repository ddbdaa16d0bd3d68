package http

import (
	"path/filepath"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/model"
)

// --- Request DTOs ---

type extractTextReq struct {
	Text  string `json:"text"  binding:"required"`
	Model string `json:"model"`
}

func (r extractTextReq) toInput() extraction.ExtractTextInput {
	return extraction.ExtractTextInput{Text: r.Text, Model: r.Model}
}

// processReq is read from JSON or, with documents, from multipart form fields.
type processReq struct {
	Action string `json:"action" form:"action" binding:"required"`
	Text   string `json:"text"   form:"text"`
	Prompt string `json:"prompt" form:"prompt"`
	Model  string `json:"model"  form:"model"`
	paths  []string
}

func (r processReq) toInput() extraction.ProcessInput {
	return extraction.ProcessInput{
		Action: r.Action,
		Text:   r.Text,
		Paths:  r.paths,
		Prompt: r.Prompt,
		Model:  r.Model,
	}
}

// --- Response DTOs ---

type extractResp struct {
	Tasks    []model.Task `json:"tasks"`
	Fallback bool         `json:"fallback,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

func newExtractResp(out extraction.ExtractOutput) extractResp {
	return extractResp{Tasks: out.Tasks, Fallback: out.Fallback, Warnings: out.Warnings}
}

type documentResp struct {
	Name     string       `json:"name"`
	Tasks    []model.Task `json:"tasks,omitempty"`
	Fallback bool         `json:"fallback,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Error    string       `json:"error,omitempty"`
}

type extractDocumentsResp struct {
	Documents []documentResp `json:"documents"`
	Tasks     []model.Task   `json:"tasks"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// newExtractDocumentsResp reports documents by their uploaded names.
func newExtractDocumentsResp(out extraction.ExtractDocumentsOutput, names map[string]string) extractDocumentsResp {
	resp := extractDocumentsResp{
		Documents: make([]documentResp, 0, len(out.Results)),
		Tasks:     out.Tasks(),
		Succeeded: out.Succeeded,
		Failed:    out.Failed,
	}
	if resp.Tasks == nil {
		resp.Tasks = []model.Task{}
	}
	for _, r := range out.Results {
		name, ok := names[r.Path]
		if !ok {
			name = filepath.Base(r.Path)
		}
		d := documentResp{Name: name, Tasks: r.Tasks, Fallback: r.Fallback, Warnings: r.Warnings}
		if r.Err != nil {
			d.Error = r.Err.Error()
		}
		resp.Documents = append(resp.Documents, d)
	}
	return resp
}

type processResp struct {
	Action string       `json:"action"`
	Text   string       `json:"text,omitempty"`
	Tasks  []model.Task `json:"tasks,omitempty"`
}

func newProcessResp(out extraction.ProcessOutput) processResp {
	return processResp{Action: out.Action, Text: out.Text, Tasks: out.Tasks}
}

type modelsResp struct {
	Models []string `json:"models"`
}
