package extraction

import "errors"

var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrNoDocuments     = errors.New("no documents given")
	ErrInvalidDocument = errors.New("document is not a readable file")
	ErrEmptyPrompt     = errors.New("custom prompt is empty")
	ErrUnknownAction   = errors.New("unknown action")
)
