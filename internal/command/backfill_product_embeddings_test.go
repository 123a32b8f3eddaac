package command

import (
	"errors"
	"testing"

	cmdmocks "github.com/danielyoungkimball/oneoff-mvp/internal/command/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBackfillProductEmbeddings_Execute(t *testing.T) {
	t.Run("processes_batches_until_empty", func(t *testing.T) {
		lister := mocks.NewMockProductsMissingEmbeddingLister(t)
		indexer := cmdmocks.NewMockCommand[IndexProductRequest, Empty](t)

		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 2).Return(testProducts("a", 2), nil).Once()
		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 2).Return(testProducts("b", 1), nil).Once()
		indexer.EXPECT().Execute(mock.Anything, mock.Anything).Return(Empty{}, nil).Times(3)

		sut := NewBackfillProductEmbeddings(lister, indexer, BackfillProductEmbeddingsConfig{BatchSize: 2})
		res, err := sut.Execute(testContext(), BackfillProductEmbeddingsRequest{})

		require.NoError(t, err)
		assert.Equal(t, BackfillProductEmbeddingsResponse{Indexed: 3}, res)
	})

	t.Run("stops_when_batch_makes_no_progress", func(t *testing.T) {
		lister := mocks.NewMockProductsMissingEmbeddingLister(t)
		indexer := cmdmocks.NewMockCommand[IndexProductRequest, Empty](t)

		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 2).Return(testProducts("a", 2), nil).Once()
		indexer.EXPECT().Execute(mock.Anything, mock.Anything).Return(Empty{}, errors.New("provider down")).Times(2)

		sut := NewBackfillProductEmbeddings(lister, indexer, BackfillProductEmbeddingsConfig{BatchSize: 2})
		res, err := sut.Execute(testContext(), BackfillProductEmbeddingsRequest{})

		require.NoError(t, err)
		assert.Equal(t, BackfillProductEmbeddingsResponse{Failed: 2}, res)
	})

	t.Run("partial_failure_continues", func(t *testing.T) {
		lister := mocks.NewMockProductsMissingEmbeddingLister(t)
		indexer := cmdmocks.NewMockCommand[IndexProductRequest, Empty](t)
		products := testProducts("a", 2)

		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 2).Return(products, nil).Once()
		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 2).Return(nil, nil).Once()
		indexer.EXPECT().Execute(mock.Anything, IndexProductRequest{Product: products[0]}).Return(Empty{}, nil)
		indexer.EXPECT().Execute(mock.Anything, IndexProductRequest{Product: products[1]}).
			Return(Empty{}, errors.New("provider down"))

		sut := NewBackfillProductEmbeddings(lister, indexer, BackfillProductEmbeddingsConfig{BatchSize: 2})
		res, err := sut.Execute(testContext(), BackfillProductEmbeddingsRequest{})

		require.NoError(t, err)
		assert.Equal(t, BackfillProductEmbeddingsResponse{Indexed: 1, Failed: 1}, res)
	})

	t.Run("list_error", func(t *testing.T) {
		lister := mocks.NewMockProductsMissingEmbeddingLister(t)
		indexer := cmdmocks.NewMockCommand[IndexProductRequest, Empty](t)

		lister.EXPECT().ListProductsMissingEmbedding(mock.Anything, 100).
			Return([]domain.Product(nil), errors.New("db down"))

		sut := NewBackfillProductEmbeddings(lister, indexer, BackfillProductEmbeddingsConfig{})
		_, err := sut.Execute(testContext(), BackfillProductEmbeddingsRequest{})

		require.Error(t, err)
	})
}
