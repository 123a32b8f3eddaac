// Package resilience wraps embedding providers with a circuit breaker and a
// result cache.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

type BreakerConfig struct {
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval after which closed-state counts reset.
	Interval time.Duration
	// Timeout before an open breaker moves to half-open.
	Timeout time.Duration
	// ConsecutiveFailures that trip the breaker.
	ConsecutiveFailures uint32
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:                name,
		MaxRequests:         2,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakerEmbedder stops calling a failing embedding provider until it has had
// time to recover. Rejected calls fail fast with gobreaker.ErrOpenState or
// gobreaker.ErrTooManyRequests.
type BreakerEmbedder struct {
	next    datasources.Embedder
	cb      *gobreaker.CircuitBreaker[[]float32]
	name    string
	metrics *metrics.Collector
}

var _ datasources.Embedder = (*BreakerEmbedder)(nil)

func NewBreakerEmbedder(
	ctx context.Context,
	next datasources.Embedder,
	cfg BreakerConfig,
	collector *metrics.Collector,
) *BreakerEmbedder {
	logger := domain.LoggerFromContext(ctx).With("breaker", cfg.Name)
	collector.SetBreakerState(cfg.Name, stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[[]float32](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WarnContext(ctx, "circuit breaker state change", "from", from.String(), "to", to.String())
			collector.SetBreakerState(name, stateValue(to))
		},
	})

	return &BreakerEmbedder{
		next:    next,
		cb:      cb,
		name:    cfg.Name,
		metrics: collector,
	}
}

func (b *BreakerEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, err := b.cb.Execute(func() ([]float32, error) {
		return b.next.EmbedText(ctx, text)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		b.metrics.RecordBreakerRequest(b.name, "rejected")
	case err != nil:
		b.metrics.RecordBreakerRequest(b.name, metrics.OutcomeFailure)
	default:
		b.metrics.RecordBreakerRequest(b.name, metrics.OutcomeSuccess)
	}

	return vector, err
}

func (b *BreakerEmbedder) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
