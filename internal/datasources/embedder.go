package datasources

import (
	"context"
	"errors"
)

// ErrEmbeddingUnavailable is returned when no embedding provider is configured.
var ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")

// Embedder embeds text into a vector for similarity search.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder is a null implementation of Embedder. It always fails so that
// callers fall back to non-semantic sources.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, ErrEmbeddingUnavailable
}
