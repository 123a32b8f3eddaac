package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordFeedStep(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFeedStep("embed", true)
	c.RecordFeedStep("embed", false)
	c.RecordFeedStep("embed", false)

	assert.InDelta(t, 1, testutil.ToFloat64(c.stepOutcomes.WithLabelValues("embed", OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.stepOutcomes.WithLabelValues("embed", OutcomeFailure)), 0)
}

func TestCollector_RecordFeedItems(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordFeedItems("social", 3)
	c.RecordFeedItems("social", 0)
	c.RecordFeedItems("semantic", 17)

	assert.InDelta(t, 3, testutil.ToFloat64(c.feedItems.WithLabelValues("social")), 0)
	assert.InDelta(t, 17, testutil.ToFloat64(c.feedItems.WithLabelValues("semantic")), 0)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordFeedStep("embed", true)
		c.RecordFeedItems("social", 1)
		c.ObserveFeedDuration(time.Second)
		c.SetBreakerState("embedder", 2)
		c.RecordBreakerRequest("embedder", "rejected")
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.SetBreakerState("embedder", 2)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `circuit_breaker_state{name="embedder"} 2`)
}
