package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"mrdom-sdr/config"
	"mrdom-sdr/pkg/log"
)

const (
	defaultCBMaxFailures uint32        = 5
	defaultCBTimeout     time.Duration = 30 * time.Second
	defaultCBInterval    time.Duration = 60 * time.Second
)

// CircuitBreakerProvider wraps a Provider so repeated failures fail fast
// instead of reaching the backend.
type CircuitBreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker[*Response]
}

// NewCircuitBreakerProvider wraps inner with a circuit breaker.
// Zero values in cfg fall back to defaults.
func NewCircuitBreakerProvider(inner Provider, cfg config.CircuitBreakerConfig, l log.Logger) *CircuitBreakerProvider {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultCBMaxFailures
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultCBTimeout
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = defaultCBInterval
	}

	cb := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        "llm:" + inner.Name(),
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn(context.Background(), "llmprovider.CircuitBreaker: state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		// caller mistakes must not trip the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidRequest)
		},
	})

	return &CircuitBreakerProvider{inner: inner, breaker: cb}
}

// GenerateContent routes the call through the breaker.
func (p *CircuitBreakerProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := p.breaker.Execute(func() (*Response, error) {
		return p.inner.GenerateContent(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &ProviderError{Provider: p.inner.Name(), Err: fmt.Errorf("%w: %v", ErrCircuitOpen, err)}
		}
		return nil, err
	}
	return resp, nil
}

func (p *CircuitBreakerProvider) Name() string  { return p.inner.Name() }
func (p *CircuitBreakerProvider) Model() string { return p.inner.Model() }

// State returns the current breaker state.
func (p *CircuitBreakerProvider) State() gobreaker.State {
	return p.breaker.State()
}

var _ Provider = (*CircuitBreakerProvider)(nil)
