// Package metrics exposes Prometheus instrumentation for feed generation and
// its upstream dependencies. A nil *Collector is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Collector struct {
	stepOutcomes    *prometheus.CounterVec
	feedItems       *prometheus.CounterVec
	feedDuration    prometheus.Histogram
	breakerState    *prometheus.GaugeVec
	breakerRequests *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		stepOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_step_outcomes_total",
			Help: "Feed generation steps by step name and outcome.",
		}, []string{"step", "outcome"}),
		feedItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_items_total",
			Help: "Items returned in feeds by provenance.",
		}, []string{"provenance"}),
		feedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "feed_generation_duration_seconds",
			Help:    "Time taken to assemble a feed response.",
			Buckets: prometheus.DefBuckets,
		}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open).",
		}, []string{"name"}),
		breakerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through a circuit breaker by result.",
		}, []string{"name", "result"}),
	}

	reg.MustRegister(
		c.stepOutcomes,
		c.feedItems,
		c.feedDuration,
		c.breakerState,
		c.breakerRequests,
	)

	return c
}

func (c *Collector) RecordFeedStep(step string, ok bool) {
	if c == nil {
		return
	}
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}
	c.stepOutcomes.WithLabelValues(step, outcome).Inc()
}

func (c *Collector) RecordFeedItems(provenance string, count int) {
	if c == nil || count == 0 {
		return
	}
	c.feedItems.WithLabelValues(provenance).Add(float64(count))
}

func (c *Collector) ObserveFeedDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.feedDuration.Observe(d.Seconds())
}

func (c *Collector) SetBreakerState(name string, state float64) {
	if c == nil {
		return
	}
	c.breakerState.WithLabelValues(name).Set(state)
}

// RecordBreakerRequest counts a call through breaker name; result is
// "success", "failure" or "rejected".
func (c *Collector) RecordBreakerRequest(name, result string) {
	if c == nil {
		return
	}
	c.breakerRequests.WithLabelValues(name, result).Inc()
}

// Handler serves the registry for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
