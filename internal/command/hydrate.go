package command

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// hydrateMatches loads the products behind vector index hits, keeping match
// order and dropping hits whose product no longer exists.
func hydrateMatches(
	ctx context.Context,
	fetcher datasources.ProductFetcher,
	matches []domain.SimilarProduct,
) ([]domain.ScoredProduct, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	ids := make([]string, len(matches))
	scores := make(map[string]float64, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
		if _, ok := scores[m.ID]; !ok {
			scores[m.ID] = m.Score
		}
	}

	products, err := fetcher.FetchProductsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching matched products: %w", err)
	}

	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.ScoredProduct{Product: p, Score: scores[p.ID]})
	}
	return scored, nil
}
