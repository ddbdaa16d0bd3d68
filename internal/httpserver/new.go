package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/log"
	"reminder-extractor/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	metrics         *metrics.Metrics
	rateLimitPerMin int
	maxUploadBytes  int64
	location        *time.Location
	ready           func(ctx context.Context) error

	// Domains
	extractionUC extraction.UseCase
	reminderUC   reminder.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Metrics         *metrics.Metrics
	RateLimitPerMin int
	MaxUploadBytes  int64
	Location        *time.Location
	// Ready reports whether dependencies are reachable. Nil means always ready.
	Ready func(ctx context.Context) error

	ExtractionUC extraction.UseCase
	ReminderUC   reminder.UseCase
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		metrics:         cfg.Metrics,
		rateLimitPerMin: cfg.RateLimitPerMin,
		maxUploadBytes:  cfg.MaxUploadBytes,
		location:        cfg.Location,
		ready:           cfg.Ready,
		extractionUC:    cfg.ExtractionUC,
		reminderUC:      cfg.ReminderUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
