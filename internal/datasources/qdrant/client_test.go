package qdrant

import (
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointID(t *testing.T) {
	id := "3f2a1c9e-8d4b-4e6f-9a1b-2c3d4e5f6a7b"
	assert.Equal(t, id, pointID(id))

	derived := pointID("sku-123")
	assert.Len(t, derived, 36)
	assert.Equal(t, derived, pointID("sku-123"))
	assert.NotEqual(t, derived, pointID("sku-124"))
}

func TestScoredPointsToProducts(t *testing.T) {
	points := []*pb.ScoredPoint{
		{
			Id:    &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: "uuid-1"}},
			Score: 0.9,
			Payload: map[string]*pb.Value{
				productIDPayloadKey: {Kind: &pb.Value_StringValue{StringValue: "sku-1"}},
			},
		},
		{
			Id:    &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: "uuid-2"}},
			Score: 0.7,
		},
		{
			Score: 0.65,
		},
	}

	got := scoredPointsToProducts(points)
	require.Len(t, got, 2)
	assert.Equal(t, "sku-1", got[0].ID)
	assert.InDelta(t, 0.9, got[0].Score, 1e-6)
	assert.Equal(t, "uuid-2", got[1].ID)
}

func TestProductPayload(t *testing.T) {
	brand := "Acme"
	payload := productPayload(domain.Product{ID: "p1", Name: "Coat", Brand: &brand, Tags: []string{"warm"}})

	assert.Equal(t, "p1", payload[productIDPayloadKey].GetStringValue())
	assert.Equal(t, "Acme", payload["brand"].GetStringValue())
	require.Len(t, payload["tags"].GetListValue().GetValues(), 1)
	assert.Equal(t, "warm", payload["tags"].GetListValue().GetValues()[0].GetStringValue())
	assert.NotContains(t, payload, "price")
}

func TestDeletePointRequest(t *testing.T) {
	req := deletePointRequest("products", "sku-123")

	assert.Equal(t, "products", req.GetCollectionName())
	ids := req.GetPoints().GetPoints().GetIds()
	require.Len(t, ids, 1)
	assert.Equal(t, pointID("sku-123"), ids[0].GetUuid())
}
