package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// SimilarityRepository combines the vector index operations.
type SimilarityRepository interface {
	SimilarProductsByVectorLister
	ProductVectorIndexer
	ProductVectorDeleter
}

// SimilarProductsByVectorLister returns up to limit product IDs whose similarity to
// vector is at least threshold, best match first.
type SimilarProductsByVectorLister interface {
	ListSimilarProductsByVector(
		ctx context.Context,
		vector []float32,
		threshold float64,
		limit int,
	) ([]domain.SimilarProduct, error)
}

type ProductVectorIndexer interface {
	IndexProductVector(ctx context.Context, product domain.Product, vector []float32) error
}

// ProductVectorDeleter removes a product from the vector index. Removing an
// absent product is not an error.
type ProductVectorDeleter interface {
	DeleteProductVector(ctx context.Context, productID string) error
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarProductsByVector(
	_ context.Context,
	_ []float32,
	_ float64,
	_ int,
) ([]domain.SimilarProduct, error) {
	return nil, nil
}

func (NullSimilarityRepository) IndexProductVector(_ context.Context, _ domain.Product, _ []float32) error {
	return nil
}

func (NullSimilarityRepository) DeleteProductVector(_ context.Context, _ string) error {
	return nil
}
