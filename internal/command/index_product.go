package command

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// IndexProductRequest is the request for the IndexProduct command.
type IndexProductRequest struct {
	Product domain.Product
}

// IndexProduct embeds a product's text, stores the embedding with the product
// and upserts it into the vector index.
type IndexProduct struct {
	Embedder        datasources.Embedder
	EmbeddingSetter datasources.ProductEmbeddingSetter
	VectorIndexer   datasources.ProductVectorIndexer
}

// NewIndexProduct creates a properly initialized IndexProduct command.
func NewIndexProduct(
	embedder datasources.Embedder,
	embeddingSetter datasources.ProductEmbeddingSetter,
	vectorIndexer datasources.ProductVectorIndexer,
) *IndexProduct {
	return &IndexProduct{
		Embedder:        embedder,
		EmbeddingSetter: embeddingSetter,
		VectorIndexer:   vectorIndexer,
	}
}

func (c *IndexProduct) Execute(ctx context.Context, req IndexProductRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	vector, err := c.Embedder.EmbedText(ctx, req.Product.EmbeddingText())
	if err != nil {
		return Empty{}, fmt.Errorf("embedding product %s: %w", req.Product.ID, err)
	}
	if len(vector) == 0 {
		logger.DebugContext(ctx, "embedder returned no vector, skipping index", "product_id", req.Product.ID)
		return Empty{}, nil
	}

	if err := c.EmbeddingSetter.SetProductEmbedding(ctx, req.Product.ID, vector); err != nil {
		return Empty{}, fmt.Errorf("storing product embedding: %w", err)
	}

	if err := c.VectorIndexer.IndexProductVector(ctx, req.Product, vector); err != nil {
		return Empty{}, fmt.Errorf("indexing product vector: %w", err)
	}

	logger.DebugContext(ctx, "indexed product", "product_id", req.Product.ID, "dimension", len(vector))
	return Empty{}, nil
}
