// Package llm is a client for OpenAI-compatible chat completion servers
// (Jan, llama.cpp, LM Studio, Ollama's /v1 API).
package llm

import "context"

// Client performs single request/response cycles. It never retries.
type Client interface {
	// Complete sends req and returns the first choice.
	Complete(ctx context.Context, req Request) (*Response, error)
	// Models lists the model identifiers served by the endpoint.
	Models(ctx context.Context) ([]string, error)
	// Model returns the default model identifier.
	Model() string
}

// New validates cfg and returns a Client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
