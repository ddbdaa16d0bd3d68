package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

type clientImpl struct {
	apiURL      string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		apiURL:      cfg.APIURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  cfg.HTTPClient,
	}
}

func (c *clientImpl) Model() string {
	return c.model
}

// Complete posts a non-streaming chat completion.
func (c *clientImpl) Complete(ctx context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("llm: request has no messages")
	}

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("llm: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(raw)}
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return transformResponse(&completion)
}

// Models calls GET {base}/models where base is the API URL without
// the /chat/completions suffix.
func (c *clientImpl) Models(ctx context.Context) ([]string, error) {
	url := strings.TrimSuffix(strings.TrimRight(c.apiURL, "/"), chatCompletionsSuffix) + "/models"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create models request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(raw)}
	}

	var models modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	ids := make([]string, 0, len(models.Data))
	for _, m := range models.Data {
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

func (c *clientImpl) authorize(r *http.Request) {
	if c.apiKey != "" {
		r.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// transportError wraps a failed round trip. Caller cancellation is returned
// as is. Only dial failures and broken connections are reported as a dead
// server; a deadline hit after connecting is a *TimeoutError.
func (c *clientImpl) transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, context.Canceled) {
		return ctxErr
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &ConnectionError{Endpoint: c.apiURL, Err: err}
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Endpoint: c.apiURL, Err: err}
	}
	return &ConnectionError{Endpoint: c.apiURL, Err: err}
}

func (c *clientImpl) buildRequest(req Request) *chatRequest {
	out := &chatRequest{
		Messages:    req.Messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Model:       c.model,
		Stream:      false,
	}
	if req.Model != "" {
		out.Model = req.Model
	}
	if req.Temperature != nil {
		out.Temperature = *req.Temperature
	}
	if req.MaxTokens > 0 {
		out.MaxTokens = req.MaxTokens
	}
	return out
}

func transformResponse(resp *chatResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	choice := resp.Choices[0]
	out := &Response{
		FinishReason: choice.FinishReason,
		Model:        resp.Model,
	}
	if resp.Usage != nil {
		out.Usage = Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	// Reasoning models may leave content empty and answer in reasoning_content.
	switch {
	case strings.TrimSpace(choice.Message.Content) != "":
		out.Text = choice.Message.Content
	case strings.TrimSpace(choice.Message.ReasoningContent) != "":
		out.Text = choice.Message.ReasoningContent
		out.FromReasoning = true
	default:
		return nil, ErrEmptyResponse
	}

	return out, nil
}
