package response

import (
	"fmt"
	"net/http"
)

// HTTPError carries the status a handler wants for a domain error.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// WrapHTTPError keeps err reachable through errors.Is.
func WrapHTTPError(status int, err error) *HTTPError {
	return &HTTPError{Status: status, Message: err.Error(), Err: err}
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http %d", e.Status)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// code is the error_code written for a status: 1 for plain client errors,
// the status itself otherwise.
func (e *HTTPError) code() int {
	if e.Status == http.StatusBadRequest {
		return 1
	}
	return e.Status
}
