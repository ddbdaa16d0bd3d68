package llm

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var documentMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// DocumentMIMEType returns the MIME type used for the data URI of path.
// Unknown extensions are sent as PDF.
func DocumentMIMEType(path string) string {
	if mt, ok := documentMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "application/pdf"
}

// DataURI reads path and returns data:<mime>;base64,<payload>.
func DataURI(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("llm: failed to read document: %w", err)
	}
	return "data:" + DocumentMIMEType(path) + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// NewDocumentRequest builds the document-attached call shape: an optional
// system turn followed by one user turn holding the instruction text and the
// document as an image_url part.
func NewDocumentRequest(path, instruction, system string) (Request, error) {
	uri, err := DataURI(path)
	if err != nil {
		return Request{}, err
	}

	msgs := make([]Message, 0, 2)
	if system != "" {
		msgs = append(msgs, TextMessage(RoleSystem, system))
	}
	msgs = append(msgs, Message{
		Role: RoleUser,
		Parts: []Part{
			{Type: PartText, Text: instruction},
			{Type: PartImageURL, ImageURL: uri},
		},
	})
	return Request{Messages: msgs}, nil
}
