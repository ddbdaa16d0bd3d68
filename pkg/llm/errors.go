package llm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoChoices is returned when the server answers without any choice.
	ErrNoChoices = errors.New("no response from model")
	// ErrEmptyResponse is returned when the first choice carries no text.
	ErrEmptyResponse = errors.New("model returned empty response")
	// ErrInvalidResponse is returned when the body is not a completion object.
	ErrInvalidResponse = errors.New("invalid JSON response from LLM API")
)

// ConnectionError means the endpoint could not be reached at all.
type ConnectionError struct {
	Endpoint    string
	CircuitOpen bool
	Err         error
}

func (e *ConnectionError) Error() string {
	if e.CircuitOpen {
		return fmt.Sprintf("LLM service not running: too many failed connections to %s, backing off", e.Endpoint)
	}
	return fmt.Sprintf("LLM service not running: cannot connect to %s, ensure the model server is running with its API enabled: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TimeoutError means the endpoint accepted the request but gave no answer in
// time. The server is alive, so it does not count as a transport failure.
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("LLM request to %s timed out waiting for the model, try a smaller input or a longer timeout: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer from the endpoint.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("LLM API error %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// FailureKind buckets a call failure for fallback decisions.
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureTransport  FailureKind = "transport"
	FailureHTTP       FailureKind = "http"
	FailureCapability FailureKind = "capability"
	FailureOther      FailureKind = "other"
)

// CapabilityMarkers are the error substrings servers use when a model cannot
// take image or document input. Matched case-insensitively. The list follows
// llama.cpp based servers and may need updating when they change wording.
var CapabilityMarkers = []string{
	"image input is not supported",
	"mmproj",
	"multimodal",
}

// Classify maps err to a FailureKind. Capability markers win over the HTTP
// status because servers report them as 4xx/5xx bodies.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range CapabilityMarkers {
		if strings.Contains(msg, marker) {
			return FailureCapability
		}
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return FailureTransport
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return FailureHTTP
	}
	return FailureOther
}

// IsCapabilityError reports whether err means the model rejected multimodal input.
func IsCapabilityError(err error) bool {
	return Classify(err) == FailureCapability
}
