package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func testProducts(prefix string, n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{ID: fmt.Sprintf("%s%d", prefix, i), Name: fmt.Sprintf("Product %s%d", prefix, i)}
	}
	return products
}

func testMatches(products []domain.Product, score float64) []domain.SimilarProduct {
	matches := make([]domain.SimilarProduct, len(products))
	for i, p := range products {
		matches[i] = domain.SimilarProduct{ID: p.ID, Score: score}
	}
	return matches
}

func productIDs(items []domain.FeedItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.Product.ID
	}
	return ids
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}
