package command

import (
	"errors"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSimilarProducts_Execute(t *testing.T) {
	vector := []float32{0.1, 0.9}
	source := domain.Product{ID: "p1", Name: "Trail Runner", Brand: ptr("Acme"), Tags: []string{"shoes"}}

	cases := []struct {
		name        string
		limit       int
		found       []domain.Product
		fetchErr    error
		embedErr    error
		wantLimit   int
		matchErr    error
		matches     []domain.SimilarProduct
		hydrateIDs  []string
		hydrated    []domain.Product
		want        []domain.ScoredProduct
		wantErrIs   error
		wantErr     bool
		expectEmbed bool
	}{
		{
			name:        "excludes_source_product",
			limit:       2,
			found:       []domain.Product{source},
			expectEmbed: true,
			wantLimit:   3,
			matches: []domain.SimilarProduct{
				{ID: "p1", Score: 1.0},
				{ID: "p2", Score: 0.8},
				{ID: "p3", Score: 0.7},
			},
			hydrateIDs: []string{"p2", "p3"},
			hydrated:   []domain.Product{{ID: "p2"}, {ID: "p3"}},
			want: []domain.ScoredProduct{
				{Product: domain.Product{ID: "p2"}, Score: 0.8},
				{Product: domain.Product{ID: "p3"}, Score: 0.7},
			},
		},
		{
			name:        "truncates_when_source_absent",
			limit:       1,
			found:       []domain.Product{source},
			expectEmbed: true,
			wantLimit:   2,
			matches:     []domain.SimilarProduct{{ID: "p2", Score: 0.8}, {ID: "p3", Score: 0.7}},
			hydrateIDs:  []string{"p2"},
			hydrated:    []domain.Product{{ID: "p2"}},
			want:        []domain.ScoredProduct{{Product: domain.Product{ID: "p2"}, Score: 0.8}},
		},
		{
			name:      "unknown_product",
			limit:     5,
			found:     nil,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:     "fetch_failure",
			limit:    5,
			fetchErr: errors.New("db down"),
			wantErr:  true,
		},
		{
			name:        "match_failure",
			limit:       5,
			found:       []domain.Product{source},
			expectEmbed: true,
			wantLimit:   6,
			matchErr:    errors.New("index unavailable"),
			wantErr:     true,
		},
		{
			name:        "embed_failure",
			limit:       5,
			found:       []domain.Product{source},
			expectEmbed: true,
			embedErr:    errors.New("provider down"),
			wantErr:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := mocks.NewMockEmbedder(t)
			matcher := mocks.NewMockSimilarProductsByVectorLister(t)
			fetcher := mocks.NewMockProductFetcher(t)

			fetcher.EXPECT().FetchProductsByID(mock.Anything, []string{"p1"}).Return(tc.found, tc.fetchErr)
			if tc.expectEmbed {
				embedder.EXPECT().EmbedText(mock.Anything, "Trail Runner Acme shoes").Return(vector, tc.embedErr)
			}
			if tc.wantLimit > 0 {
				matcher.EXPECT().ListSimilarProductsByVector(mock.Anything, vector, 0.6, tc.wantLimit).Return(tc.matches, tc.matchErr)
			}
			if len(tc.hydrateIDs) > 0 {
				fetcher.EXPECT().FetchProductsByID(mock.Anything, tc.hydrateIDs).Return(tc.hydrated, nil)
			}

			got, err := NewListSimilarProducts(embedder, matcher, fetcher, testSemanticSearchConfig()).
				Execute(testContext(), ListSimilarProductsRequest{ProductID: "p1", Limit: tc.limit})

			if tc.wantErrIs != nil {
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
