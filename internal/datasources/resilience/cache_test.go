package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachingEmbedder_ReusesVector(t *testing.T) {
	upstream := mocks.NewMockEmbedder(t)
	upstream.EXPECT().EmbedText(mock.Anything, "trending items").Return([]float32{0.5, 0.5}, nil).Once()

	sut, err := NewCachingEmbedder(upstream, 1<<20, time.Minute)
	require.NoError(t, err)
	defer sut.Close()

	for range 2 {
		got, err := sut.EmbedText(context.Background(), "trending items")
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.5}, got)
		sut.cache.Wait()
	}
}

func TestCachingEmbedder_CallerMutationDoesNotLeak(t *testing.T) {
	upstream := mocks.NewMockEmbedder(t)
	upstream.EXPECT().EmbedText(mock.Anything, "boots").Return([]float32{1, 2}, nil).Once()

	sut, err := NewCachingEmbedder(upstream, 1<<20, time.Minute)
	require.NoError(t, err)
	defer sut.Close()

	first, err := sut.EmbedText(context.Background(), "boots")
	require.NoError(t, err)
	first[0] = 99
	sut.cache.Wait()

	second, err := sut.EmbedText(context.Background(), "boots")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, second)
	second[1] = 99

	third, err := sut.EmbedText(context.Background(), "boots")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, third)
}

func TestCachingEmbedder_DoesNotCacheFailures(t *testing.T) {
	upstream := mocks.NewMockEmbedder(t)
	upstream.EXPECT().EmbedText(mock.Anything, "boots").Return(nil, errors.New("timeout")).Once()
	upstream.EXPECT().EmbedText(mock.Anything, "boots").Return([]float32{1}, nil).Once()

	sut, err := NewCachingEmbedder(upstream, 1<<20, time.Minute)
	require.NoError(t, err)
	defer sut.Close()

	_, err = sut.EmbedText(context.Background(), "boots")
	require.Error(t, err)

	got, err := sut.EmbedText(context.Background(), "boots")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, got)
}
