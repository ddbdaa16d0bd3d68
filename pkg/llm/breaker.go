package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig configures WithBreaker.
type BreakerConfig struct {
	Enabled          bool
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
	OnStateChange    func(from, to string)
}

func (c BreakerConfig) normalize() BreakerConfig {
	if c.MinRequests == 0 {
		c.MinRequests = 3
	}
	if c.FailureRatio <= 0 || c.FailureRatio > 1 {
		c.FailureRatio = 0.6
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	if c.HalfOpenMaxCalls == 0 {
		c.HalfOpenMaxCalls = 1
	}
	return c
}

type breakerClient struct {
	Client
	endpoint string
	cb       *gobreaker.CircuitBreaker[*Response]
}

// WithBreaker wraps c with a circuit breaker. Only transport failures count
// against it: HTTP errors and bad answers mean the server is alive. While
// open, Complete fails fast with a *ConnectionError. No retries are made.
func WithBreaker(c Client, endpoint string, cfg BreakerConfig) Client {
	if !cfg.Enabled {
		return c
	}
	cfg = cfg.normalize()

	settings := gobreaker.Settings{
		Name:        "llm",
		MaxRequests: cfg.HalfOpenMaxCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || Classify(err) != FailureTransport
		},
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			cfg.OnStateChange(from.String(), to.String())
		}
	}

	return &breakerClient{
		Client:   c,
		endpoint: endpoint,
		cb:       gobreaker.NewCircuitBreaker[*Response](settings),
	}
}

func (b *breakerClient) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, err := b.cb.Execute(func() (*Response, error) {
		return b.Client.Complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &ConnectionError{Endpoint: b.endpoint, CircuitOpen: true, Err: err}
	}
	return resp, err
}
