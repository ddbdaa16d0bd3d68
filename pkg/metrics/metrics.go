// Package metrics owns the Prometheus registry for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rex"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder is what the use cases depend on. Nop satisfies it for tests and
// for the CLI when metrics are not served.
type Recorder interface {
	ObserveExtraction(source, outcome string, d time.Duration)
	IncFallback()
	AddTokens(model string, promptTokens, completionTokens int)
	ObserveReminder(backend, outcome string)
}

type Metrics struct {
	registry *prometheus.Registry

	requestTotal       *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	requestInFlight    prometheus.Gauge
	extractionTotal    *prometheus.CounterVec
	extractionDuration *prometheus.HistogramVec
	fallbackTotal      prometheus.Counter
	tokensTotal        *prometheus.CounterVec
	remindersTotal     *prometheus.CounterVec
	breakerState       *prometheus.GaugeVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"method", "path"}),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
		}),
		extractionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "extraction",
			Name:      "total",
			Help:      "Extractions by source (text, document) and outcome.",
		}, []string{"source", "outcome"}),
		extractionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "extraction",
			Name:      "duration_seconds",
			Help:      "End to end extraction duration in seconds.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 300},
		}, []string{"source"}),
		fallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "extraction",
			Name:      "fallback_total",
			Help:      "Documents that fell back to local text extraction.",
		}),
		tokensTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Token usage reported by the model endpoint.",
		}, []string{"direction", "model"}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminders",
			Name:      "created_total",
			Help:      "Reminder creations by backend and outcome.",
		}, []string{"backend", "outcome"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "breaker_state",
			Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
		}, []string{"endpoint"}),
	}

	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.requestInFlight,
		m.extractionTotal,
		m.extractionDuration,
		m.fallbackTotal,
		m.tokensTotal,
		m.remindersTotal,
		m.breakerState,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveExtraction(source, outcome string, d time.Duration) {
	m.extractionTotal.WithLabelValues(source, outcome).Inc()
	m.extractionDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (m *Metrics) IncFallback() {
	m.fallbackTotal.Inc()
}

func (m *Metrics) AddTokens(model string, promptTokens, completionTokens int) {
	if model == "" {
		model = "unknown"
	}
	if promptTokens > 0 {
		m.tokensTotal.WithLabelValues("in", model).Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		m.tokensTotal.WithLabelValues("out", model).Add(float64(completionTokens))
	}
}

func (m *Metrics) ObserveReminder(backend, outcome string) {
	m.remindersTotal.WithLabelValues(backend, outcome).Inc()
}

// SetBreakerState maps gobreaker state names onto the gauge.
func (m *Metrics) SetBreakerState(endpoint, state string) {
	v := 0.0
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	m.breakerState.WithLabelValues(endpoint).Set(v)
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveExtraction(string, string, time.Duration) {}
func (Nop) IncFallback()                                    {}
func (Nop) AddTokens(string, int, int)                      {}
func (Nop) ObserveReminder(string, string)                  {}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
