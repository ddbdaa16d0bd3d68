package doctext

import "time"

const (
	DefaultMaxChars = 50000
	DefaultTimeout  = 60 * time.Second
	DefaultDPI      = 300
	DefaultLang     = "eng"

	// TruncationMarker is appended when the text exceeds MaxChars.
	TruncationMarker = "\n\n[... truncated ...]"
)

// Method names the stage that produced the text.
type Method string

const (
	MethodTextLayer Method = "text-layer"
	MethodPdftotext Method = "pdftotext"
	MethodPDFOCR    Method = "pdf-ocr"
	MethodImageOCR  Method = "image-ocr"
)

// Config configures the extractor. Binaries may be names on PATH or absolute paths.
type Config struct {
	Pdftotext string
	Pdftoppm  string
	Tesseract string
	Lang      string
	DPI       int
	MaxPages  int // 0 = all pages
	MaxChars  int
	Timeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.MaxChars <= 0 {
		c.MaxChars = DefaultMaxChars
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Result is the outcome of one extraction.
type Result struct {
	Text           string
	Method         Method
	Pages          int
	OriginalLength int // characters before truncation
	Truncated      bool
}
