package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/google/uuid"
)

// CreateProductRequest is the request for the CreateProduct command.
type CreateProductRequest struct {
	Name      string
	Brand     *string
	Price     *float64
	SourceURL *string
	ImageURL  *string
	Tags      []string
}

// CreateProduct adds a product to the catalog and indexes it for semantic
// matching. Indexing is best-effort; a product that fails to index is picked
// up by the embedding backfill.
type CreateProduct struct {
	Creator datasources.ProductCreator
	Indexer Command[IndexProductRequest, Empty]
}

// NewCreateProduct creates a properly initialized CreateProduct command.
func NewCreateProduct(
	creator datasources.ProductCreator,
	indexer Command[IndexProductRequest, Empty],
) *CreateProduct {
	return &CreateProduct{
		Creator: creator,
		Indexer: indexer,
	}
}

// Execute returns domain.ErrInvalidProduct for a blank name or negative price.
func (c *CreateProduct) Execute(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", domain.ErrInvalidProduct)
	}
	if req.Price != nil && *req.Price < 0 {
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Brand:     req.Brand,
		Price:     req.Price,
		SourceURL: req.SourceURL,
		ImageURL:  req.ImageURL,
		Tags:      domain.CleanTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.Creator.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("creating product: %w", err)
	}

	if _, err := c.Indexer.Execute(ctx, IndexProductRequest{Product: product}); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to index new product, leaving for backfill",
			"product_id", product.ID, "error", err)
	}

	return product, nil
}
