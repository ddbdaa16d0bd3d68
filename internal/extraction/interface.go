package extraction

import "context"

// UseCase turns free text and documents into tasks through the model endpoint.
type UseCase interface {
	// ExtractText builds the text prompt for input and parses one completion.
	ExtractText(ctx context.Context, input ExtractTextInput) (ExtractOutput, error)

	// ExtractDocument attaches the document to the request and falls back to
	// local text extraction when the model cannot read attachments.
	ExtractDocument(ctx context.Context, input ExtractDocumentInput) (ExtractOutput, error)

	// ExtractDocuments processes paths one after another.
	ExtractDocuments(ctx context.Context, input ExtractDocumentsInput) (ExtractDocumentsOutput, error)

	// Process runs a named action (task extraction, summary, custom prompt or
	// a canned quick action) against text or documents.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// Models lists the model identifiers the endpoint serves.
	Models(ctx context.Context) ([]string, error)
}

// TextExtractor recovers plain text from a PDF or image.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
