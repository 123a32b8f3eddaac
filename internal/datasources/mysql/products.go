package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var productColumns = []string{
	"p.id", "p.name", "p.brand", "p.price", "p.source_url", "p.img_url", "p.tags", "p.created_at", "p.updated_at",
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		product   domain.Product
		brand     sql.NullString
		price     sql.NullFloat64
		sourceURL sql.NullString
		imageURL  sql.NullString
		tags      []byte
	)

	if err := row.Scan(
		&product.ID, &product.Name, &brand, &price, &sourceURL, &imageURL, &tags,
		&product.CreatedAt, &product.UpdatedAt,
	); err != nil {
		return domain.Product{}, fmt.Errorf("scanning product: %w", err)
	}

	decodedTags, err := decodeStrings(tags)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", product.ID, err)
	}

	product.Brand = nullStringPtr(brand)
	product.Price = nullFloatPtr(price)
	product.SourceURL = nullStringPtr(sourceURL)
	product.ImageURL = nullStringPtr(imageURL)
	product.Tags = decodedTags
	return product, nil
}

func (r *Repository) queryProducts(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Product, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running products query: %w", err)
	}
	defer closeRows(rows)

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

func buildProductConditions(sb *sqlbuilder.SelectBuilder, filter domain.ProductFilter) []string {
	var conds []string

	if filter.Brand != nil {
		conds = append(conds, sb.Equal("p.brand", *filter.Brand))
	}
	if filter.MinPrice != nil {
		conds = append(conds, sb.GreaterEqualThan("p.price", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, sb.LessEqualThan("p.price", *filter.MaxPrice))
	}
	if len(filter.Tags) > 0 {
		if encoded, err := encodeStrings(filter.Tags); err == nil {
			conds = append(conds, "JSON_OVERLAPS(p.tags, CAST("+sb.Args.Add(encoded)+" AS JSON))")
		}
	}

	return conds
}

func (r *Repository) ListProducts(
	ctx context.Context,
	filter domain.ProductFilter,
	limit, offset int,
) ([]domain.Product, domain.ProductListMetadata, error) {
	products, err := r.ListProductsByFilter(ctx, filter, limit, offset)
	if err != nil {
		return nil, domain.ProductListMetadata{}, err
	}

	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("products p")
	if conds := buildProductConditions(sb, filter); len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, domain.ProductListMetadata{}, fmt.Errorf("counting matching products: %w", err)
	}

	return products, domain.ProductListMetadata{TotalRows: total}, nil
}

func (r *Repository) ListProductsByFilter(
	ctx context.Context,
	filter domain.ProductFilter,
	limit, offset int,
) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	if conds := buildProductConditions(sb, filter); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("p.created_at DESC", "p.id")
	sb.Limit(limit)
	sb.Offset(offset)

	return r.queryProducts(ctx, sb)
}

func (r *Repository) ListProductsByBrand(
	ctx context.Context,
	brand string,
	limit, offset int,
) ([]domain.Product, error) {
	return r.ListProductsByFilter(ctx, domain.ProductFilter{Brand: &brand}, limit, offset)
}

func (r *Repository) ListRecentProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return r.ListProductsByFilter(ctx, domain.ProductFilter{}, limit, offset)
}

// FetchProductsByID returns the products in ids order, skipping unknown ids.
// Stored embeddings are not loaded.
func (r *Repository) FetchProductsByID(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	sb.Where(sb.In("p.id", values...))

	fetched, err := r.queryProducts(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("fetching products by ID: %w", err)
	}

	byID := make(map[string]domain.Product, len(fetched))
	for _, product := range fetched {
		byID[product.ID] = product
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := byID[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product domain.Product) error {
	tags, err := encodeStrings(product.Tags)
	if err != nil {
		return err
	}

	var embedding any
	if len(product.Embedding) > 0 {
		embedding = float32SliceToBytes(product.Embedding)
	}

	ib := sqlbuilder.InsertInto("products")
	ib.Cols("id", "name", "brand", "price", "source_url", "img_url", "tags", "embedding", "created_at", "updated_at")
	ib.Values(
		product.ID, product.Name, product.Brand, product.Price, product.SourceURL, product.ImageURL,
		tags, embedding, product.CreatedAt, product.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *Repository) SetProductEmbedding(ctx context.Context, productID string, embedding []float32) error {
	ub := sqlbuilder.Update("products")
	ub.Set(ub.Assign("embedding", float32SliceToBytes(embedding)))
	ub.Where(ub.Equal("id", productID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating product embedding: %w", err)
	}
	return nil
}

func (r *Repository) ListProductsMissingEmbedding(ctx context.Context, limit int) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	sb.Where(sb.IsNull("p.embedding"))
	sb.OrderBy("p.created_at", "p.id")
	sb.Limit(limit)

	return r.queryProducts(ctx, sb)
}

func (r *Repository) UpdateProduct(ctx context.Context, product domain.Product, staleEmbedding bool) error {
	tags, err := encodeStrings(product.Tags)
	if err != nil {
		return err
	}

	ub := sqlbuilder.Update("products")
	assignments := []string{
		ub.Assign("name", product.Name),
		ub.Assign("brand", product.Brand),
		ub.Assign("price", product.Price),
		ub.Assign("source_url", product.SourceURL),
		ub.Assign("img_url", product.ImageURL),
		ub.Assign("tags", tags),
		ub.Assign("updated_at", product.UpdatedAt),
	}
	if staleEmbedding {
		assignments = append(assignments, "embedding = NULL")
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", product.ID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, productID string) error {
	db := sqlbuilder.DeleteFrom("products")
	db.Where(db.Equal("id", productID))

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted product: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("DISTINCT brand")
	sb.From("products")
	sb.Where(sb.IsNotNull("brand"), sb.NotEqual("brand", ""))
	sb.OrderBy("brand")

	query, args := sb.Build()
	return r.queryStrings(ctx, query, args...)
}

func (r *Repository) ListTags(ctx context.Context) ([]string, error) {
	const query = "SELECT DISTINCT jt.tag FROM products p, " +
		"JSON_TABLE(p.tags, '$[*]' COLUMNS (tag VARCHAR(255) PATH '$')) AS jt " +
		"WHERE jt.tag IS NOT NULL AND jt.tag <> '' ORDER BY jt.tag"

	return r.queryStrings(ctx, query)
}

func (r *Repository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer closeRows(rows)

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return values, nil
}
