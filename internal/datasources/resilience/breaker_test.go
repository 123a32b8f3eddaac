package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBreakerEmbedder_OpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	upstream := mocks.NewMockEmbedder(t)
	upstream.EXPECT().EmbedText(mock.Anything, "shoes").Return(nil, errors.New("provider down")).Times(3)

	cfg := DefaultBreakerConfig("embedder")
	cfg.ConsecutiveFailures = 3
	cfg.Timeout = time.Hour

	sut := NewBreakerEmbedder(ctx, upstream, cfg, metrics.NewCollector(prometheus.NewRegistry()))

	for range 3 {
		_, err := sut.EmbedText(ctx, "shoes")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, sut.State())

	_, err := sut.EmbedText(ctx, "shoes")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestBreakerEmbedder_PassesThroughSuccess(t *testing.T) {
	ctx := context.Background()
	upstream := mocks.NewMockEmbedder(t)
	upstream.EXPECT().EmbedText(mock.Anything, "coat").Return([]float32{1, 2}, nil).Once()

	sut := NewBreakerEmbedder(ctx, upstream, DefaultBreakerConfig("embedder"), nil)

	got, err := sut.EmbedText(ctx, "coat")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, got)
	assert.Equal(t, gobreaker.StateClosed, sut.State())
}
