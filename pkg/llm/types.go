package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIURL      string // full chat completions URL
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Validate fills defaults and rejects impossible values.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("llm: temperature %.2f out of range [0,1]", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("llm: max tokens must not be negative, got %d", c.MaxTokens)
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Part is one element of a multimodal message.
type Part struct {
	Type     PartType
	Text     string
	ImageURL string
}

// Message is one chat turn. Content is used when Parts is empty.
type Message struct {
	Role    Role
	Content string
	Parts   []Part
}

// TextMessage builds a plain text message.
func TextMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// MarshalJSON renders the OpenAI wire shape: string content, or an array of
// typed parts for multimodal turns.
func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.Parts) == 0 {
		return json.Marshal(struct {
			Role    Role   `json:"role"`
			Content string `json:"content"`
		}{m.Role, m.Content})
	}

	parts := make([]wirePart, 0, len(m.Parts))
	for _, p := range m.Parts {
		wp := wirePart{Type: p.Type}
		switch p.Type {
		case PartImageURL:
			wp.ImageURL = &wireImageURL{URL: p.ImageURL}
		default:
			wp.Type = PartText
			wp.Text = p.Text
		}
		parts = append(parts, wp)
	}
	return json.Marshal(struct {
		Role    Role       `json:"role"`
		Content []wirePart `json:"content"`
	}{m.Role, parts})
}

// Request is one chat completion call. Zero values use the client defaults.
type Request struct {
	Messages    []Message
	Model       string
	Temperature *float64
	MaxTokens   int
}

// Response is the first choice of a completion.
type Response struct {
	Text          string
	FromReasoning bool // Text came from reasoning_content
	FinishReason  string
	Model         string
	Usage         Usage
}

// Truncated reports whether the model hit the token limit.
func (r *Response) Truncated() bool {
	return r.FinishReason == FinishReasonLength
}

// Usage is token accounting reported by the server.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type wirePart struct {
	Type     PartType      `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *wireImageURL `json:"image_url,omitempty"`
}

type wireImageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Model       string    `json:"model"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatMessage struct {
	Role             string `json:"role"`
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}
