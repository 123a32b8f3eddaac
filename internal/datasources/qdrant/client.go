// Package qdrant stores and searches product vectors in a Qdrant collection over gRPC.
package qdrant

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const productIDPayloadKey = "product_id"

var _ datasources.SimilarityRepository = (*Client)(nil)

type Config struct {
	Host       string
	Port       int
	Collection string
	// APIKey enables TLS and api-key authentication when set.
	APIKey string
	UseTLS bool
}

type Client struct {
	conn        *grpc.ClientConn
	points      pb.PointsClient
	collections pb.CollectionsClient
	collection  string
}

func apiKeyInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "api-key", apiKey)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func NewClient(cfg Config) (*Client, error) {
	var opts []grpc.DialOption
	if cfg.UseTLS || cfg.APIKey != "" {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
			MinVersion: tls.VersionTLS12,
		})))
		if cfg.APIKey != "" {
			opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
		}
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Client{
		conn:        conn,
		points:      pb.NewPointsClient(conn),
		collections: pb.NewCollectionsClient(conn),
		collection:  cfg.Collection,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// EnsureCollection creates the collection with cosine distance if it does not exist.
func (c *Client) EnsureCollection(ctx context.Context, dimension int) error {
	if _, err := c.collections.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: c.collection}); err == nil {
		return nil
	}

	_, err := c.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: c.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     uint64(dimension), //nolint:gosec // embedding dimensions are small
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", c.collection, err)
	}
	return nil
}

func (c *Client) ListSimilarProductsByVector(
	ctx context.Context,
	vector []float32,
	threshold float64,
	limit int,
) ([]domain.SimilarProduct, error) {
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	scoreThreshold := float32(threshold)
	resp, err := c.points.Search(ctx, &pb.SearchPoints{
		CollectionName: c.collection,
		Vector:         vector,
		Limit:          uint64(limit),
		ScoreThreshold: &scoreThreshold,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Include{
				Include: &pb.PayloadIncludeSelector{Fields: []string{productIDPayloadKey}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching qdrant: %w", err)
	}

	return scoredPointsToProducts(resp.GetResult()), nil
}

func scoredPointsToProducts(points []*pb.ScoredPoint) []domain.SimilarProduct {
	results := make([]domain.SimilarProduct, 0, len(points))
	for _, point := range points {
		id := point.GetPayload()[productIDPayloadKey].GetStringValue()
		if id == "" {
			id = point.GetId().GetUuid()
		}
		if id == "" {
			continue
		}
		results = append(results, domain.SimilarProduct{ID: id, Score: float64(point.GetScore())})
	}
	return results
}

func (c *Client) IndexProductVector(ctx context.Context, product domain.Product, vector []float32) error {
	_, err := c.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: c.collection,
		Points: []*pb.PointStruct{{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{Uuid: pointID(product.ID)},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{Data: vector},
				},
			},
			Payload: productPayload(product),
		}},
	})
	if err != nil {
		return fmt.Errorf("upserting point for product %s: %w", product.ID, err)
	}
	return nil
}

func (c *Client) DeleteProductVector(ctx context.Context, productID string) error {
	if _, err := c.points.Delete(ctx, deletePointRequest(c.collection, productID)); err != nil {
		return fmt.Errorf("deleting point for product %s: %w", productID, err)
	}
	return nil
}

func deletePointRequest(collection, productID string) *pb.DeletePoints {
	return &pb.DeletePoints{
		CollectionName: collection,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{
					Ids: []*pb.PointId{{PointIdOptions: &pb.PointId_Uuid{Uuid: pointID(productID)}}},
				},
			},
		},
	}
}

// pointID maps product IDs onto the UUIDs Qdrant requires. Non-UUID IDs get a
// stable name-based UUID; the original ID travels in the payload.
func pointID(productID string) string {
	if id, err := uuid.Parse(productID); err == nil {
		return id.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("product:"+productID)).String()
}

func productPayload(product domain.Product) map[string]*pb.Value {
	payload := map[string]*pb.Value{
		productIDPayloadKey: {Kind: &pb.Value_StringValue{StringValue: product.ID}},
		"name":              {Kind: &pb.Value_StringValue{StringValue: product.Name}},
	}
	if product.Brand != nil {
		payload["brand"] = &pb.Value{Kind: &pb.Value_StringValue{StringValue: *product.Brand}}
	}
	if product.Price != nil {
		payload["price"] = &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: *product.Price}}
	}

	tags := make([]*pb.Value, len(product.Tags))
	for i, tag := range product.Tags {
		tags[i] = &pb.Value{Kind: &pb.Value_StringValue{StringValue: tag}}
	}
	payload["tags"] = &pb.Value{Kind: &pb.Value_ListValue{ListValue: &pb.ListValue{Values: tags}}}

	return payload
}
