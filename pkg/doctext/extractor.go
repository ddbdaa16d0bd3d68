// Package doctext recovers plain text from PDFs and images: the PDF text
// layer first, then poppler's pdftotext, then OCR through pdftoppm and
// tesseract.
package doctext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"reminder-extractor/pkg/command"
	"reminder-extractor/pkg/log"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true, ".bmp": true, ".webp": true, ".gif": true,
}

// Extractor runs the layered strategy.
type Extractor struct {
	cfg    Config
	runner command.Runner
	l      log.Logger
}

type stage struct {
	method Method
	run    func(ctx context.Context, path string) (string, int, error)
}

// New creates an Extractor. A nil runner uses os/exec.
func New(cfg Config, runner command.Runner, l log.Logger) *Extractor {
	if runner == nil {
		runner = command.NewExecRunner(l)
	}
	return &Extractor{cfg: cfg.withDefaults(), runner: runner, l: l}
}

// ExtractText returns the text of path, truncated to MaxChars.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	res, err := e.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Extract runs the stages for path's type until one yields non-blank text.
// The whole run is bounded by Config.Timeout.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, ErrEmptyPath
	}
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("doctext: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	var lastErr error
	for _, st := range e.stagesFor(path) {
		text, pages, err := st.run(ctx, path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return Result{}, fmt.Errorf("%w after %s (%s)", ErrTimeout, e.cfg.Timeout, st.method)
			}
			return Result{}, ctxErr
		}
		if err != nil {
			e.l.Debugf(ctx, "doctext.Extract: stage=%s path=%s failed: %v", st.method, path, err)
			lastErr = err
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			e.l.Debugf(ctx, "doctext.Extract: stage=%s path=%s produced no text", st.method, path)
			continue
		}

		res := Result{Method: st.method, Pages: pages, OriginalLength: utf8.RuneCountInString(text)}
		res.Text, res.Truncated = Truncate(text, e.cfg.MaxChars)
		if res.Truncated {
			e.l.Infof(ctx, "doctext.Extract: truncating from %d to %d chars", res.OriginalLength, e.cfg.MaxChars)
		}
		e.l.Infof(ctx, "doctext.Extract: path=%s method=%s pages=%d chars=%d", path, st.method, pages, len(res.Text))
		return res, nil
	}

	if lastErr != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNoText, lastErr)
	}
	return Result{}, ErrNoText
}

func (e *Extractor) stagesFor(path string) []stage {
	if imageExts[strings.ToLower(filepath.Ext(path))] {
		return []stage{{MethodImageOCR, e.imageOCR}}
	}
	return []stage{
		{MethodTextLayer, e.textLayer},
		{MethodPdftotext, e.pdftotext},
		{MethodPDFOCR, e.pdfOCR},
	}
}

// Truncate cuts text to max characters and appends TruncationMarker.
func Truncate(text string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:max]) + TruncationMarker, true
}

// textLayer reads embedded text with the pure Go parser. The parser panics
// on some malformed files, so panics are turned into errors.
func (e *Extractor) textLayer(_ context.Context, path string) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages = r.NumPage()
	limit := pages
	if e.cfg.MaxPages > 0 && e.cfg.MaxPages < limit {
		limit = e.cfg.MaxPages
	}

	var b strings.Builder
	for i := 1; i <= limit; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, perr := p.GetPlainText(nil)
		if perr != nil {
			return "", pages, fmt.Errorf("page %d: %w", i, perr)
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(pageText))
	}
	return b.String(), pages, nil
}

func (e *Extractor) pdftotext(ctx context.Context, path string) (string, int, error) {
	out, _, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, err
	}
	text := string(out)
	// pdftotext separates pages with form feeds.
	return text, 1 + strings.Count(strings.TrimRight(text, "\f"), "\f"), nil
}

func (e *Extractor) pdfOCR(ctx context.Context, path string) (string, int, error) {
	tmpDir, err := os.MkdirTemp("", "doctext-*")
	if err != nil {
		return "", 0, err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	args := []string{"-r", strconv.Itoa(e.cfg.DPI), "-png"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(e.cfg.MaxPages))
	}
	args = append(args, path, prefix)
	if _, _, err := e.runner.Run(ctx, e.cfg.Pdftoppm, args...); err != nil {
		return "", 0, err
	}

	images, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(images)
	if len(images) == 0 {
		return "", 0, errors.New("pdftoppm produced no images")
	}

	var b strings.Builder
	var lastErr error
	for _, img := range images {
		txt, err := e.tesseract(ctx, img)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(txt))
	}
	if b.Len() == 0 && lastErr != nil {
		return "", len(images), lastErr
	}
	return b.String(), len(images), nil
}

func (e *Extractor) imageOCR(ctx context.Context, path string) (string, int, error) {
	text, err := e.tesseract(ctx, path)
	return text, 1, err
}

func (e *Extractor) tesseract(ctx context.Context, image string) (string, error) {
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, image, "stdout", "-l", e.cfg.Lang)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
