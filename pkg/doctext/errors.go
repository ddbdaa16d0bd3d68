package doctext

import "errors"

var (
	// ErrNoText means every strategy ran and none produced text.
	ErrNoText = errors.New("failed to extract text from document, make sure tesseract is installed for OCR support")
	// ErrTimeout means extraction exceeded Config.Timeout.
	ErrTimeout = errors.New("text extraction timed out")
	// ErrEmptyPath is returned for an empty path argument.
	ErrEmptyPath = errors.New("empty document path")
)
