package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"reminder-extractor/pkg/metrics"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/v1/models", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/models", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	if !strings.Contains(body, `rex_http_requests_total{method="GET",path="/api/v1/models",status="200"} 2`) {
		t.Errorf("missing request counter:\n%s", body)
	}
	if !strings.Contains(body, `path="unmatched",status="404"`) {
		t.Errorf("expected unmatched routes to share one label:\n%s", body)
	}
}

func TestRecorders(t *testing.T) {
	m := metrics.New()

	m.ObserveExtraction("document", metrics.Outcome(nil), time.Second)
	m.ObserveExtraction("document", metrics.Outcome(errors.New("x")), time.Second)
	m.IncFallback()
	m.AddTokens("", 10, 0)
	m.ObserveReminder("applescript", metrics.OutcomeSuccess)
	m.SetBreakerState("llm", "open")

	count, err := testutil.GatherAndCount(m.Registry(), "rex_extraction_total")
	if err != nil || count != 2 {
		t.Errorf("expected 2 extraction series, got %d (%v)", count, err)
	}

	expected := `
# HELP rex_llm_tokens_total Token usage reported by the model endpoint.
# TYPE rex_llm_tokens_total counter
rex_llm_tokens_total{direction="in",model="unknown"} 10
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "rex_llm_tokens_total"); err != nil {
		t.Error(err)
	}

	expected = `
# HELP rex_llm_breaker_state Circuit breaker state: 0 closed, 1 half-open, 2 open.
# TYPE rex_llm_breaker_state gauge
rex_llm_breaker_state{endpoint="llm"} 2
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "rex_llm_breaker_state"); err != nil {
		t.Error(err)
	}
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r metrics.Recorder = metrics.Nop{}
	r.IncFallback()
	var _ metrics.Recorder = metrics.New()
}
