package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, provenance Provenance) FeedItem {
	return FeedItem{Product: &Product{ID: id}, Provenance: provenance}
}

func itemIDs(items []FeedItem) []string {
	ids := make([]string, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.Product.ID)
	}
	return ids
}

func TestDeduplicateFeedItems(t *testing.T) {
	cases := []struct {
		name      string
		items     []FeedItem
		wantIDs   []string
		wantProvs []Provenance
	}{
		{
			name:    "empty",
			items:   nil,
			wantIDs: []string{},
		},
		{
			name: "keeps_first_occurrence",
			items: []FeedItem{
				item("a", ProvenanceSocial),
				item("b", ProvenanceSemantic),
				item("a", ProvenanceSemantic),
				item("c", ProvenanceFallback),
				item("b", ProvenanceFallback),
			},
			wantIDs:   []string{"a", "b", "c"},
			wantProvs: []Provenance{ProvenanceSocial, ProvenanceSemantic, ProvenanceFallback},
		},
		{
			name: "drops_missing_products",
			items: []FeedItem{
				{Provenance: ProvenanceSocial},
				item("", ProvenanceSemantic),
				item("x", ProvenanceFallback),
			},
			wantIDs:   []string{"x"},
			wantProvs: []Provenance{ProvenanceFallback},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeduplicateFeedItems(tc.items)
			assert.Equal(t, tc.wantIDs, itemIDs(got))
			for i, prov := range tc.wantProvs {
				assert.Equal(t, prov, got[i].Provenance)
			}
		})
	}
}

func TestMergeFeed(t *testing.T) {
	social := []FeedItem{item("s1", ProvenanceSocial), item("s2", ProvenanceSocial), item("s3", ProvenanceSocial)}

	semantic := make([]FeedItem, 0, 15)
	semantic = append(semantic, item("s2", ProvenanceSemantic))
	for i := range 14 {
		semantic = append(semantic, item(fmt.Sprintf("m%d", i), ProvenanceSemantic))
	}

	t.Run("social_first_and_deduplicated", func(t *testing.T) {
		got := MergeFeed(social, semantic, nil, 20)
		require.Len(t, got, 17)
		assert.Equal(t, []string{"s1", "s2", "s3"}, itemIDs(got[:3]))
		assert.Equal(t, ProvenanceSocial, got[1].Provenance)
		for _, it := range got[3:] {
			assert.Equal(t, ProvenanceSemantic, it.Provenance)
		}
	})

	t.Run("caps_page_size", func(t *testing.T) {
		supplement := []FeedItem{}
		for i := range 10 {
			supplement = append(supplement, item(fmt.Sprintf("f%d", i), ProvenanceFallback))
		}
		got := MergeFeed(social, semantic, supplement, 20)
		require.Len(t, got, 20)
		assert.Equal(t, []string{"s1", "s2", "s3"}, itemIDs(got[:3]))
		assert.Equal(t, "f0", got[17].Product.ID)
	})

	t.Run("nothing_available", func(t *testing.T) {
		got := MergeFeed(nil, nil, nil, 20)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNewSocialFeedItem(t *testing.T) {
	product := &Product{ID: "p1"}

	named := NewSocialFeedItem(SocialReferral{
		ID:       "r1",
		SenderID: "u1",
		Sender:   UserSummary{ID: "u1", Name: ptr("Ada")},
		Product:  product,
		Message:  ptr("you'd like this"),
	})
	assert.Equal(t, "social: shared by Ada", named.Source)
	assert.Equal(t, ProvenanceSocial, named.Provenance)
	assert.Equal(t, "r1", named.ReferralID)
	assert.Same(t, product, named.Product)

	anonymous := NewSocialFeedItem(SocialReferral{ID: "r2", SenderID: "u2", Product: product})
	assert.Equal(t, "social: shared by u2", anonymous.Source)
	require.NotNil(t, anonymous.SharedBy)
	assert.Equal(t, "u2", anonymous.SharedBy.ID)
}
