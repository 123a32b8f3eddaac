package resilience

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/dgraph-io/ristretto/v2"
)

// CachingEmbedder memoises embeddings by exact input text. Failures are not cached.
// Callers own the returned slice. Sets are buffered, so a vector may be
// embedded again before its first result becomes visible.
type CachingEmbedder struct {
	next  datasources.Embedder
	cache *ristretto.Cache[string, []float32]
	ttl   time.Duration
}

var _ datasources.Embedder = (*CachingEmbedder)(nil)

// NewCachingEmbedder caches up to maxBytes of vectors, each for ttl.
func NewCachingEmbedder(next datasources.Embedder, maxBytes int64, ttl time.Duration) (*CachingEmbedder, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []float32]{
		NumCounters: 100_000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedding cache: %w", err)
	}

	return &CachingEmbedder{next: next, cache: cache, ttl: ttl}, nil
}

func (c *CachingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if vector, ok := c.cache.Get(text); ok {
		return slices.Clone(vector), nil
	}

	vector, err := c.next.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(text, slices.Clone(vector), int64(len(vector)*4), c.ttl)
	return vector, nil
}

func (c *CachingEmbedder) Close() {
	c.cache.Close()
}
