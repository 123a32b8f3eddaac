package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// SemanticSearchRequest is the request for the SemanticSearch command.
type SemanticSearchRequest struct {
	Query string
	Limit int
}

// SemanticSearchConfig holds configuration for semantic product search.
type SemanticSearchConfig struct {
	SimilarityThreshold float64
	DefaultLimit        int
	MaxLimit            int
}

// SemanticSearch finds products whose embeddings are close to free text.
type SemanticSearch struct {
	Embedder       datasources.Embedder
	VectorMatcher  datasources.SimilarProductsByVectorLister
	ProductFetcher datasources.ProductFetcher
	Config         SemanticSearchConfig
}

// NewSemanticSearch creates a properly initialized SemanticSearch command.
func NewSemanticSearch(
	embedder datasources.Embedder,
	vectorMatcher datasources.SimilarProductsByVectorLister,
	productFetcher datasources.ProductFetcher,
	config SemanticSearchConfig,
) *SemanticSearch {
	return &SemanticSearch{
		Embedder:       embedder,
		VectorMatcher:  vectorMatcher,
		ProductFetcher: productFetcher,
		Config:         config,
	}
}

// Execute returns datasources.ErrEmbeddingUnavailable when no embedder is configured.
func (c *SemanticSearch) Execute(ctx context.Context, req SemanticSearchRequest) ([]domain.ScoredProduct, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, nil
	}

	vector, err := c.Embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding search query: %w", err)
	}

	matches, err := c.VectorMatcher.ListSimilarProductsByVector(
		ctx, vector, c.Config.SimilarityThreshold, clampLimit(req.Limit, c.Config.DefaultLimit, c.Config.MaxLimit))
	if err != nil {
		return nil, fmt.Errorf("matching search vector: %w", err)
	}

	return hydrateMatches(ctx, c.ProductFetcher, matches)
}

func clampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
