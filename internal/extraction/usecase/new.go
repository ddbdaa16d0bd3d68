package usecase

import (
	"time"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/pkg/datemath"
	"reminder-extractor/pkg/llm"
	pkgLog "reminder-extractor/pkg/log"
	"reminder-extractor/pkg/metrics"
)

const (
	DefaultExtractionTemperature = 0.1
	DefaultExtractionMaxTokens   = 1500
	DefaultLargeDocumentBytes    = 10 * 1024 * 1024
)

// Config tunes the text-path call. Document calls use the client defaults.
type Config struct {
	ExtractionTemperature float64
	ExtractionMaxTokens   int
	LargeDocumentBytes    int64
	Now                   func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       llm.Client
	extractor extraction.TextExtractor
	dateMath  *datemath.Parser
	metrics   metrics.Recorder
	cfg       Config
}

// New creates a new extraction UseCase. A nil recorder disables metrics.
func New(
	l pkgLog.Logger,
	client llm.Client,
	extractor extraction.TextExtractor,
	dateMath *datemath.Parser,
	recorder metrics.Recorder,
	cfg Config,
) extraction.UseCase {
	if cfg.ExtractionTemperature <= 0 {
		cfg.ExtractionTemperature = DefaultExtractionTemperature
	}
	if cfg.ExtractionMaxTokens <= 0 {
		cfg.ExtractionMaxTokens = DefaultExtractionMaxTokens
	}
	if cfg.LargeDocumentBytes <= 0 {
		cfg.LargeDocumentBytes = DefaultLargeDocumentBytes
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &implUseCase{
		l:         l,
		llm:       client,
		extractor: extractor,
		dateMath:  dateMath,
		metrics:   recorder,
		cfg:       cfg,
	}
}
