package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// CatalogRepository combines the product catalog operations.
type CatalogRepository interface {
	ProductFetcher
	ProductLister
	ProductsByBrandLister
	ProductsByFilterLister
	RecentProductsLister
	ProductCreator
	ProductUpdater
	ProductDeleter
	ProductEmbeddingSetter
	ProductsMissingEmbeddingLister
	BrandLister
	TagLister
}

// ProductFetcher returns products in the order of ids, skipping ids that do not exist.
type ProductFetcher interface {
	FetchProductsByID(ctx context.Context, ids []string) ([]domain.Product, error)
}

type ProductLister interface {
	ListProducts(
		ctx context.Context,
		filter domain.ProductFilter,
		limit, offset int,
	) ([]domain.Product, domain.ProductListMetadata, error)
}

type ProductsByBrandLister interface {
	ListProductsByBrand(ctx context.Context, brand string, limit, offset int) ([]domain.Product, error)
}

type ProductsByFilterLister interface {
	ListProductsByFilter(
		ctx context.Context,
		filter domain.ProductFilter,
		limit, offset int,
	) ([]domain.Product, error)
}

// RecentProductsLister lists products newest first.
type RecentProductsLister interface {
	ListRecentProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

type ProductCreator interface {
	CreateProduct(ctx context.Context, product domain.Product) error
}

// ProductUpdater overwrites a product's mutable fields. staleEmbedding clears
// the stored embedding so the backfill picks the product up again.
type ProductUpdater interface {
	UpdateProduct(ctx context.Context, product domain.Product, staleEmbedding bool) error
}

// ProductDeleter returns domain.ErrNotFound if the product does not exist.
type ProductDeleter interface {
	DeleteProduct(ctx context.Context, productID string) error
}

// BrandLister lists the distinct brands in the catalog, alphabetically.
type BrandLister interface {
	ListBrands(ctx context.Context) ([]string, error)
}

// TagLister lists the distinct tags in the catalog, alphabetically.
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

type ProductEmbeddingSetter interface {
	SetProductEmbedding(ctx context.Context, productID string, embedding []float32) error
}

type ProductsMissingEmbeddingLister interface {
	ListProductsMissingEmbedding(ctx context.Context, limit int) ([]domain.Product, error)
}

// NullCatalogRepository is a null implementation of CatalogRepository.
type NullCatalogRepository struct{}

var _ CatalogRepository = NullCatalogRepository{}

func (NullCatalogRepository) FetchProductsByID(_ context.Context, _ []string) ([]domain.Product, error) {
	return nil, nil
}

func (NullCatalogRepository) ListProducts(
	_ context.Context,
	_ domain.ProductFilter,
	_, _ int,
) ([]domain.Product, domain.ProductListMetadata, error) {
	return nil, domain.ProductListMetadata{}, nil
}

func (NullCatalogRepository) ListProductsByBrand(_ context.Context, _ string, _, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (NullCatalogRepository) ListProductsByFilter(
	_ context.Context,
	_ domain.ProductFilter,
	_, _ int,
) ([]domain.Product, error) {
	return nil, nil
}

func (NullCatalogRepository) ListRecentProducts(_ context.Context, _, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (NullCatalogRepository) CreateProduct(_ context.Context, _ domain.Product) error {
	return nil
}

func (NullCatalogRepository) SetProductEmbedding(_ context.Context, _ string, _ []float32) error {
	return nil
}

func (NullCatalogRepository) ListProductsMissingEmbedding(_ context.Context, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (NullCatalogRepository) UpdateProduct(_ context.Context, _ domain.Product, _ bool) error {
	return nil
}

func (NullCatalogRepository) DeleteProduct(_ context.Context, _ string) error {
	return domain.ErrNotFound
}

func (NullCatalogRepository) ListBrands(_ context.Context) ([]string, error) {
	return nil, nil
}

func (NullCatalogRepository) ListTags(_ context.Context) ([]string, error) {
	return nil, nil
}
