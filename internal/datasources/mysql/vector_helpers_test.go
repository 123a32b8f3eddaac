package mysql

import (
	"container/heap"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32SliceToBytes_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		floats []float32
	}{
		{name: "empty", floats: []float32{}},
		{name: "single", floats: []float32{1.5}},
		{name: "multiple", floats: []float32{0.1, 0.2, 0.3, -0.5, 100.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bytes := float32SliceToBytes(tc.floats)
			assert.Len(t, bytes, len(tc.floats)*4)

			result, err := bytesToFloat32Slice(bytes)
			require.NoError(t, err)
			assert.Equal(t, tc.floats, result)
		})
	}
}

func TestBytesToFloat32Slice_InvalidLength(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		_, err := bytesToFloat32Slice(make([]byte, n))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid byte length")
	}
}

func TestDecodeStrings(t *testing.T) {
	cases := []struct {
		name    string
		raw     []byte
		want    []string
		wantErr bool
	}{
		{name: "null_column", raw: nil, want: []string{}},
		{name: "json_null", raw: []byte("null"), want: []string{}},
		{name: "array", raw: []byte(`["Nike","Zara"]`), want: []string{"Nike", "Zara"}},
		{name: "not_an_array", raw: []byte(`{"a":1}`), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeStrings(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeStrings_NilIsEmptyArray(t *testing.T) {
	encoded, err := encodeStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestSimilarHeap_KeepsBest(t *testing.T) {
	h := &similarHeap{}
	for i, score := range []float64{0.7, 0.95, 0.65, 0.8} {
		heap.Push(h, domain.SimilarProduct{ID: string(rune('a' + i)), Score: score})
		if h.Len() > 2 {
			heap.Pop(h)
		}
	}

	first := heap.Pop(h).(domain.SimilarProduct)
	second := heap.Pop(h).(domain.SimilarProduct)
	assert.Equal(t, "d", first.ID)
	assert.Equal(t, "b", second.ID)
}
