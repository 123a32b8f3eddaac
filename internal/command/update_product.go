package command

import (
	"context"
	"fmt"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// UpdateProductRequest is the request for the UpdateProduct command.
type UpdateProductRequest struct {
	ProductID string
	Update    domain.ProductUpdate
}

// UpdateProduct edits a catalog product. The stored embedding is only replaced
// when the product's name, brand or tags change; re-indexing is best-effort and
// a failure leaves the product for the embedding backfill.
type UpdateProduct struct {
	Fetcher datasources.ProductFetcher
	Updater datasources.ProductUpdater
	Indexer Command[IndexProductRequest, Empty]

	now func() time.Time
}

// NewUpdateProduct creates a properly initialized UpdateProduct command.
func NewUpdateProduct(
	fetcher datasources.ProductFetcher,
	updater datasources.ProductUpdater,
	indexer Command[IndexProductRequest, Empty],
) *UpdateProduct {
	return &UpdateProduct{
		Fetcher: fetcher,
		Updater: updater,
		Indexer: indexer,
		now:     time.Now,
	}
}

// Execute returns domain.ErrInvalidProduct for an invalid update and
// domain.ErrNotFound if the product does not exist.
func (c *UpdateProduct) Execute(ctx context.Context, req UpdateProductRequest) (domain.Product, error) {
	if err := req.Update.Validate(); err != nil {
		return domain.Product{}, err
	}

	products, err := c.Fetcher.FetchProductsByID(ctx, []string{req.ProductID})
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetching product: %w", err)
	}
	if len(products) == 0 {
		return domain.Product{}, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNotFound)
	}

	updated, textChanged := req.Update.Apply(products[0])
	updated.UpdatedAt = c.now().UTC()

	if err := c.Updater.UpdateProduct(ctx, updated, textChanged); err != nil {
		return domain.Product{}, fmt.Errorf("updating product: %w", err)
	}

	if textChanged {
		if _, err := c.Indexer.Execute(ctx, IndexProductRequest{Product: updated}); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to re-index updated product, leaving for backfill",
				"product_id", updated.ID, "error", err)
		}
	}

	return updated, nil
}
