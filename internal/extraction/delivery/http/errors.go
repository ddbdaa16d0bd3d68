package http

import (
	"context"
	"errors"
	"net/http"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/parser"
	"reminder-extractor/pkg/doctext"
	"reminder-extractor/pkg/llm"
	"reminder-extractor/pkg/response"
)

var (
	errNoFile       = errors.New("no file uploaded, send one or more files in the \"file\" field")
	errFileTooLarge = errors.New("uploaded file is too large")
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var connErr *llm.ConnectionError
	var timeoutErr *llm.TimeoutError
	var apiErr *llm.APIError

	switch {
	case errors.Is(err, extraction.ErrEmptyInput),
		errors.Is(err, extraction.ErrNoDocuments),
		errors.Is(err, extraction.ErrInvalidDocument),
		errors.Is(err, extraction.ErrEmptyPrompt),
		errors.Is(err, extraction.ErrUnknownAction),
		errors.Is(err, doctext.ErrEmptyPath):
		return response.WrapHTTPError(http.StatusBadRequest, err)
	case errors.As(err, &connErr):
		return response.WrapHTTPError(http.StatusServiceUnavailable, err)
	case errors.As(err, &apiErr),
		errors.Is(err, llm.ErrNoChoices),
		errors.Is(err, llm.ErrEmptyResponse),
		errors.Is(err, llm.ErrInvalidResponse):
		return response.WrapHTTPError(http.StatusBadGateway, err)
	case errors.Is(err, parser.ErrUnparseable),
		errors.Is(err, parser.ErrNoValidTasks),
		errors.Is(err, doctext.ErrNoText):
		return response.WrapHTTPError(http.StatusUnprocessableEntity, err)
	case errors.As(err, &timeoutErr),
		errors.Is(err, doctext.ErrTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return response.WrapHTTPError(http.StatusGatewayTimeout, err)
	default:
		return response.WrapHTTPError(http.StatusInternalServerError, err)
	}
}
