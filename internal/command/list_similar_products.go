package command

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// ListSimilarProductsRequest is the request for the ListSimilarProducts command.
type ListSimilarProductsRequest struct {
	ProductID string
	Limit     int
}

// ListSimilarProducts finds products semantically close to an existing product.
type ListSimilarProducts struct {
	Embedder       datasources.Embedder
	VectorMatcher  datasources.SimilarProductsByVectorLister
	ProductFetcher datasources.ProductFetcher
	Config         SemanticSearchConfig
}

// NewListSimilarProducts creates a properly initialized ListSimilarProducts command.
func NewListSimilarProducts(
	embedder datasources.Embedder,
	vectorMatcher datasources.SimilarProductsByVectorLister,
	productFetcher datasources.ProductFetcher,
	config SemanticSearchConfig,
) *ListSimilarProducts {
	return &ListSimilarProducts{
		Embedder:       embedder,
		VectorMatcher:  vectorMatcher,
		ProductFetcher: productFetcher,
		Config:         config,
	}
}

// Execute returns domain.ErrNotFound if the product does not exist. The product
// itself is never among the results.
func (c *ListSimilarProducts) Execute(
	ctx context.Context, req ListSimilarProductsRequest,
) ([]domain.ScoredProduct, error) {
	products, err := c.ProductFetcher.FetchProductsByID(ctx, []string{req.ProductID})
	if err != nil {
		return nil, fmt.Errorf("fetching product: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNotFound)
	}

	vector, err := c.Embedder.EmbedText(ctx, products[0].EmbeddingText())
	if err != nil {
		return nil, fmt.Errorf("embedding product: %w", err)
	}

	limit := clampLimit(req.Limit, c.Config.DefaultLimit, c.Config.MaxLimit)
	matches, err := c.VectorMatcher.ListSimilarProductsByVector(ctx, vector, c.Config.SimilarityThreshold, limit+1)
	if err != nil {
		return nil, fmt.Errorf("matching product vector: %w", err)
	}

	others := make([]domain.SimilarProduct, 0, len(matches))
	for _, m := range matches {
		if m.ID != req.ProductID {
			others = append(others, m)
		}
	}
	if len(others) > limit {
		others = others[:limit]
	}

	return hydrateMatches(ctx, c.ProductFetcher, others)
}
