package command

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// BackfillProductEmbeddingsRequest is the request for the BackfillProductEmbeddings command.
type BackfillProductEmbeddingsRequest struct{}

// BackfillProductEmbeddingsResponse reports how many products were processed.
type BackfillProductEmbeddingsResponse struct {
	Indexed int
	Failed  int
}

// BackfillProductEmbeddingsConfig holds configuration for the embedding backfill.
type BackfillProductEmbeddingsConfig struct {
	// BatchSize is how many products are read per pass.
	BatchSize int
}

// BackfillProductEmbeddings indexes every product that has no stored embedding.
type BackfillProductEmbeddings struct {
	MissingLister datasources.ProductsMissingEmbeddingLister
	IndexCommand  Command[IndexProductRequest, Empty]
	Config        BackfillProductEmbeddingsConfig
}

// NewBackfillProductEmbeddings creates a properly initialized BackfillProductEmbeddings command.
func NewBackfillProductEmbeddings(
	missingLister datasources.ProductsMissingEmbeddingLister,
	indexCommand Command[IndexProductRequest, Empty],
	config BackfillProductEmbeddingsConfig,
) *BackfillProductEmbeddings {
	return &BackfillProductEmbeddings{
		MissingLister: missingLister,
		IndexCommand:  indexCommand,
		Config:        config,
	}
}

// Execute processes batches until none remain, or until a whole batch fails,
// since the same products would otherwise be returned again.
func (c *BackfillProductEmbeddings) Execute(
	ctx context.Context, _ BackfillProductEmbeddingsRequest,
) (BackfillProductEmbeddingsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	batchSize := c.Config.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	var res BackfillProductEmbeddingsResponse
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		products, err := c.MissingLister.ListProductsMissingEmbedding(ctx, batchSize)
		if err != nil {
			return res, fmt.Errorf("listing products missing embeddings: %w", err)
		}
		if len(products) == 0 {
			break
		}

		indexed := 0
		for _, product := range products {
			if _, err := c.IndexCommand.Execute(ctx, IndexProductRequest{Product: product}); err != nil {
				logger.ErrorContext(ctx, "failed to index product", "product_id", product.ID, "error", err)
				res.Failed++
				continue
			}
			indexed++
		}
		res.Indexed += indexed

		logger.InfoContext(ctx, "indexed product batch", "indexed", indexed, "batch_size", len(products))

		if indexed == 0 {
			logger.WarnContext(ctx, "no progress in batch, stopping backfill")
			break
		}
		if len(products) < batchSize {
			break
		}
	}

	logger.InfoContext(ctx, "embedding backfill complete", "indexed", res.Indexed, "failed", res.Failed)
	return res, nil
}
