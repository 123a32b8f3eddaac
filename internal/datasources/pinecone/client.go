package pinecone

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// maxTopK is the largest TopK Pinecone accepts for a single query.
const maxTopK = 10000

var _ datasources.SimilarityRepository = (*Client)(nil)

type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey, indexName, namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for %s: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) ListSimilarProductsByVector(
	ctx context.Context,
	vector []float32,
	threshold float64,
	limit int,
) ([]domain.SimilarProduct, error) {
	if limit > maxTopK {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit), //nolint:gosec // bounded by maxTopK above
		MetadataFilter:  nil,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	return matchesAboveThreshold(resp.Matches, threshold), nil
}

// matchesAboveThreshold keeps Pinecone's ranking and drops matches scoring below
// threshold, since Pinecone queries have no score floor of their own.
func matchesAboveThreshold(matches []*pinecone.ScoredVector, threshold float64) []domain.SimilarProduct {
	results := make([]domain.SimilarProduct, 0, len(matches))
	for _, match := range matches {
		if match == nil || match.Vector == nil {
			continue
		}
		score := float64(match.Score)
		if score < threshold {
			continue
		}
		results = append(results, domain.SimilarProduct{
			ID:    match.Vector.Id,
			Score: score,
		})
	}
	return results
}

func (c *Client) IndexProductVector(ctx context.Context, product domain.Product, vector []float32) error {
	metadata, err := productMetadata(product)
	if err != nil {
		return err
	}

	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	if _, err := idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       product.ID,
		Values:   vector,
		Metadata: metadata,
	}}); err != nil {
		return fmt.Errorf("upserting vector for product %s: %w", product.ID, err)
	}
	return nil
}

func productMetadata(product domain.Product) (*pinecone.Metadata, error) {
	fields := map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
	}
	if product.Brand != nil {
		fields["brand"] = *product.Brand
	}
	if product.Price != nil {
		fields["price"] = *product.Price
	}
	if len(product.Tags) > 0 {
		tags := make([]any, 0, len(product.Tags))
		for _, tag := range product.Tags {
			tags = append(tags, tag)
		}
		fields["tags"] = tags
	}

	metadata, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("creating metadata for product %s: %w", product.ID, err)
	}
	return metadata, nil
}

func (c *Client) DeleteProductVector(ctx context.Context, productID string) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	if err := idxConn.DeleteVectorsById(ctx, []string{productID}); err != nil {
		return fmt.Errorf("deleting vector for product %s: %w", productID, err)
	}
	return nil
}
