package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/extraction"
	extractionHTTP "reminder-extractor/internal/extraction/delivery/http"
	"reminder-extractor/internal/extraction/parser"
	"reminder-extractor/internal/middleware"
	"reminder-extractor/internal/model"
	"reminder-extractor/pkg/llm"
	"reminder-extractor/pkg/log"
	"reminder-extractor/pkg/response"
)

type mockUseCase struct {
	textIn  extraction.ExtractTextInput
	docsIn  extraction.ExtractDocumentsInput
	procIn  extraction.ProcessInput
	docBody []string // file contents seen while the request was live
	out     extraction.ExtractOutput
	docsOut extraction.ExtractDocumentsOutput
	procOut extraction.ProcessOutput
	models  []string
	err     error
}

func (m *mockUseCase) ExtractText(ctx context.Context, in extraction.ExtractTextInput) (extraction.ExtractOutput, error) {
	m.textIn = in
	return m.out, m.err
}

func (m *mockUseCase) ExtractDocument(ctx context.Context, in extraction.ExtractDocumentInput) (extraction.ExtractOutput, error) {
	return m.out, m.err
}

func (m *mockUseCase) ExtractDocuments(ctx context.Context, in extraction.ExtractDocumentsInput) (extraction.ExtractDocumentsOutput, error) {
	m.docsIn = in
	for _, p := range in.Paths {
		b, _ := os.ReadFile(p)
		m.docBody = append(m.docBody, string(b))
	}
	out := m.docsOut
	if out.Results == nil {
		for _, p := range in.Paths {
			out.Results = append(out.Results, extraction.DocumentResult{Path: p, Tasks: []model.Task{{Title: "from " + p}}})
			out.Succeeded++
		}
	}
	return out, m.err
}

func (m *mockUseCase) Process(ctx context.Context, in extraction.ProcessInput) (extraction.ProcessOutput, error) {
	m.procIn = in
	return m.procOut, m.err
}

func (m *mockUseCase) Models(ctx context.Context) ([]string, error) {
	return m.models, m.err
}

func newRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := extractionHTTP.New(log.NewNop(), uc, 1024)
	extractionHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) response.Resp {
	t.Helper()
	resp := response.Resp{Data: data}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s: %v", w.Body.String(), err)
	}
	return resp
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("file", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"ok", `{"text":"call dentist tomorrow"}`, nil, http.StatusOK},
		{"missing text", `{}`, nil, http.StatusBadRequest},
		{"empty input", `{"text":"  "}`, extraction.ErrEmptyInput, http.StatusBadRequest},
		{"unreachable", `{"text":"x"}`, &llm.ConnectionError{Endpoint: "http://localhost:1337", Err: errors.New("refused")}, http.StatusServiceUnavailable},
		{"slow model", `{"text":"x"}`, &llm.TimeoutError{Endpoint: "http://localhost:1337", Err: errors.New("Client.Timeout exceeded")}, http.StatusGatewayTimeout},
		{"api error", `{"text":"x"}`, &llm.APIError{StatusCode: 500, Body: "boom"}, http.StatusBadGateway},
		{"unparseable", `{"text":"x"}`, fmt.Errorf("parse: %w", parser.ErrUnparseable), http.StatusUnprocessableEntity},
		{"no tasks", `{"text":"x"}`, parser.ErrNoValidTasks, http.StatusUnprocessableEntity},
		{"unexpected", `{"text":"x"}`, errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				out: extraction.ExtractOutput{Tasks: []model.Task{{Title: "Call dentist", DueDate: "2026-03-11"}}},
				err: tt.err,
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/text", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(uc).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var data struct {
				Tasks []model.Task `json:"tasks"`
			}
			decode(t, w, &data)
			if len(data.Tasks) != 1 || data.Tasks[0].Title != "Call dentist" {
				t.Errorf("tasks = %+v", data.Tasks)
			}
			if uc.textIn.Text != "call dentist tomorrow" {
				t.Errorf("input = %+v", uc.textIn)
			}
		})
	}
}

func TestExtractDocument(t *testing.T) {
	t.Run("batch keeps names and order", func(t *testing.T) {
		uc := &mockUseCase{}
		body, ct := multipartBody(t, map[string]string{"model": "vision", "stop_on_error": "true"}, map[string]string{"bill.pdf": "%PDF-1.4"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/document", body)
		req.Header.Set("Content-Type", ct)
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if uc.docsIn.Model != "vision" || !uc.docsIn.StopOnError || len(uc.docsIn.Paths) != 1 {
			t.Errorf("input = %+v", uc.docsIn)
		}
		if !strings.HasSuffix(uc.docsIn.Paths[0], ".pdf") || uc.docBody[0] != "%PDF-1.4" {
			t.Errorf("saved %q with %q", uc.docsIn.Paths[0], uc.docBody[0])
		}
		if _, err := os.Stat(uc.docsIn.Paths[0]); !os.IsNotExist(err) {
			t.Error("upload not cleaned up")
		}
		var data struct {
			Documents []struct {
				Name string `json:"name"`
			} `json:"documents"`
			Succeeded int `json:"succeeded"`
		}
		decode(t, w, &data)
		if len(data.Documents) != 1 || data.Documents[0].Name != "bill.pdf" || data.Succeeded != 1 {
			t.Errorf("data = %+v", data)
		}
	})

	t.Run("all failed maps first error", func(t *testing.T) {
		uc := &mockUseCase{docsOut: extraction.ExtractDocumentsOutput{
			Results: []extraction.DocumentResult{{Path: "x", Err: parser.ErrNoValidTasks}},
			Failed:  1,
		}}
		body, ct := multipartBody(t, nil, map[string]string{"a.pdf": "x"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/document", body)
		req.Header.Set("Content-Type", ct)
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("too large", func(t *testing.T) {
		body, ct := multipartBody(t, nil, map[string]string{"big.pdf": strings.Repeat("x", 2048)})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/document", body)
		req.Header.Set("Content-Type", ct)
		newRouter(&mockUseCase{}).ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("no file", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"model": "x"}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/document", body)
		req.Header.Set("Content-Type", ct)
		newRouter(&mockUseCase{}).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestProcess(t *testing.T) {
	t.Run("json text action", func(t *testing.T) {
		uc := &mockUseCase{procOut: extraction.ProcessOutput{Action: "grammar", Text: "Fixed."}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/process", strings.NewReader(`{"action":"grammar","text":"fixd"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if uc.procIn.Action != "grammar" || uc.procIn.Text != "fixd" || uc.procIn.Paths != nil {
			t.Errorf("input = %+v", uc.procIn)
		}
		var data struct {
			Text string `json:"text"`
		}
		decode(t, w, &data)
		if data.Text != "Fixed." {
			t.Errorf("text = %q", data.Text)
		}
	})

	t.Run("multipart with document", func(t *testing.T) {
		uc := &mockUseCase{procOut: extraction.ProcessOutput{Action: "summarize", Text: "A bill."}}
		body, ct := multipartBody(t, map[string]string{"action": "summarize"}, map[string]string{"a.pdf": "x"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/process", body)
		req.Header.Set("Content-Type", ct)
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if uc.procIn.Action != "summarize" || len(uc.procIn.Paths) != 1 {
			t.Errorf("input = %+v", uc.procIn)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		uc := &mockUseCase{err: fmt.Errorf("%w: %q", extraction.ErrUnknownAction, "dance")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/process", strings.NewReader(`{"action":"dance","text":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestModels(t *testing.T) {
	uc := &mockUseCase{models: []string{"llama3.2-3b", "qwen2.5-vl"}}
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/models", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data struct {
		Models []string `json:"models"`
	}
	decode(t, w, &data)
	if len(data.Models) != 2 || data.Models[1] != "qwen2.5-vl" {
		t.Errorf("models = %v", data.Models)
	}
}
