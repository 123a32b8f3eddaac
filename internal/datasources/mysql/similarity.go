package mysql

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

// ListSimilarProductsByVector scans every stored product embedding and keeps the
// limit best matches scoring at least threshold. It suits catalogs small enough
// to scan per request; larger catalogs should use a dedicated vector index.
func (r *Repository) ListSimilarProductsByVector(
	ctx context.Context,
	vector []float32,
	threshold float64,
	limit int,
) ([]domain.SimilarProduct, error) {
	if limit <= 0 {
		return []domain.SimilarProduct{}, nil
	}

	sb := sqlbuilder.Select("id", "embedding")
	sb.From("products")
	sb.Where(sb.IsNotNull("embedding"))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scanning product embeddings: %w", err)
	}
	defer closeRows(rows)

	best := &similarHeap{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning product embedding: %w", err)
		}

		embedding, err := bytesToFloat32Slice(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for product %s: %w", id, err)
		}
		score, err := domain.CosineSimilarity(vector, embedding)
		if err != nil {
			// Embeddings from a different model generation are skipped.
			continue
		}
		if score < threshold {
			continue
		}

		heap.Push(best, domain.SimilarProduct{ID: id, Score: score})
		if best.Len() > limit {
			heap.Pop(best)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	matches := make([]domain.SimilarProduct, best.Len())
	for i := len(matches) - 1; i >= 0; i-- {
		matches[i] = heap.Pop(best).(domain.SimilarProduct)
	}
	return matches, nil
}

// IndexProductVector is a no-op: the scan reads embeddings straight from the
// products table, which SetProductEmbedding already maintains.
func (r *Repository) IndexProductVector(_ context.Context, _ domain.Product, _ []float32) error {
	return nil
}

// DeleteProductVector is a no-op: the embedding is deleted with its product row.
func (r *Repository) DeleteProductVector(_ context.Context, _ string) error {
	return nil
}

// similarHeap is a min-heap on score.
type similarHeap []domain.SimilarProduct

func (h similarHeap) Len() int           { return len(h) }
func (h similarHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h similarHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *similarHeap) Push(x any) {
	*h = append(*h, x.(domain.SimilarProduct))
}

func (h *similarHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
