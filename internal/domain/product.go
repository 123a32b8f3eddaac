package domain

import (
	"fmt"
	"strings"
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     *string   `json:"brand,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	SourceURL *string   `json:"source_url,omitempty"`
	ImageURL  *string   `json:"img_url,omitempty"`
	Tags      []string  `json:"tags"`
	Embedding []float32 `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmbeddingText is the text a product's embedding is computed from.
func (p Product) EmbeddingText() string {
	parts := []string{p.Name}
	if p.Brand != nil && *p.Brand != "" {
		parts = append(parts, *p.Brand)
	}
	parts = append(parts, p.Tags...)
	return strings.Join(parts, " ")
}

// CleanTags trims tags and drops blank ones.
func CleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

// ProductUpdate changes only the non-nil fields of a product.
type ProductUpdate struct {
	Name      *string
	Brand     *string
	Price     *float64
	SourceURL *string
	ImageURL  *string
	Tags      *[]string
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Brand == nil && u.Price == nil &&
		u.SourceURL == nil && u.ImageURL == nil && u.Tags == nil
}

func (u ProductUpdate) Validate() error {
	if u.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidProduct)
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidProduct)
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	return nil
}

// Apply returns p with the update applied, and whether the product's embedding
// text changed as a result.
func (u ProductUpdate) Apply(p Product) (Product, bool) {
	updated := p
	if u.Name != nil {
		updated.Name = strings.TrimSpace(*u.Name)
	}
	if u.Brand != nil {
		updated.Brand = u.Brand
	}
	if u.Price != nil {
		updated.Price = u.Price
	}
	if u.SourceURL != nil {
		updated.SourceURL = u.SourceURL
	}
	if u.ImageURL != nil {
		updated.ImageURL = u.ImageURL
	}
	if u.Tags != nil {
		updated.Tags = CleanTags(*u.Tags)
	}
	return updated, updated.EmbeddingText() != p.EmbeddingText()
}

// ProductFilter restricts a product listing. Nil fields are not applied.
type ProductFilter struct {
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	Tags     []string
}

func (f ProductFilter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("%w: min_price must not be negative", ErrInvalidFilter)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must not be negative", ErrInvalidFilter)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: min_price exceeds max_price", ErrInvalidFilter)
	}
	return nil
}

// IsEmpty reports whether no constraint is set.
func (f ProductFilter) IsEmpty() bool {
	return f.Brand == nil && f.MinPrice == nil && f.MaxPrice == nil && len(f.Tags) == 0
}

type ProductListMetadata struct {
	TotalRows int `json:"total_rows"`
}

// SimilarProduct is a vector index hit prior to hydration.
type SimilarProduct struct {
	ID    string
	Score float64
}

// ScoredProduct is a hydrated vector match.
type ScoredProduct struct {
	Product Product
	Score   float64
}
