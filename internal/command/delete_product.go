package command

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// DeleteProductRequest is the request for the DeleteProduct command.
type DeleteProductRequest struct {
	ProductID string
}

// DeleteProduct removes a product from the catalog and then from the vector
// index. A vector left behind by a failed index delete is harmless: matches
// are hydrated from the catalog, which no longer has the product.
type DeleteProduct struct {
	Deleter       datasources.ProductDeleter
	VectorDeleter datasources.ProductVectorDeleter
}

// NewDeleteProduct creates a properly initialized DeleteProduct command.
func NewDeleteProduct(
	deleter datasources.ProductDeleter,
	vectorDeleter datasources.ProductVectorDeleter,
) *DeleteProduct {
	return &DeleteProduct{
		Deleter:       deleter,
		VectorDeleter: vectorDeleter,
	}
}

// Execute returns domain.ErrNotFound if the product does not exist.
func (c *DeleteProduct) Execute(ctx context.Context, req DeleteProductRequest) (Empty, error) {
	if err := c.Deleter.DeleteProduct(ctx, req.ProductID); err != nil {
		return Empty{}, fmt.Errorf("deleting product %s: %w", req.ProductID, err)
	}

	if err := c.VectorDeleter.DeleteProductVector(ctx, req.ProductID); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to remove deleted product from vector index",
			"product_id", req.ProductID, "error", err)
	}

	return Empty{}, nil
}
