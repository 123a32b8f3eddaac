package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCompileQuery(t *testing.T) {
	cases := []struct {
		name    string
		profile PreferenceProfile
		want    string
	}{
		{
			name:    "empty_profile",
			profile: PreferenceProfile{},
			want:    "",
		},
		{
			name:    "brands_only",
			profile: PreferenceProfile{FavoriteBrands: []string{"Nike", "Zara"}},
			want:    "Nike Zara",
		},
		{
			name:    "budget_tier",
			profile: PreferenceProfile{PriceRange: &PriceRange{Max: ptr(50.0)}},
			want:    "budget affordable",
		},
		{
			name:    "mid_tier_lower_edge",
			profile: PreferenceProfile{PriceRange: &PriceRange{Max: ptr(100.0)}},
			want:    "mid-range quality",
		},
		{
			name:    "mid_tier",
			profile: PreferenceProfile{PriceRange: &PriceRange{Max: ptr(300.0)}},
			want:    "mid-range quality",
		},
		{
			name:    "premium_tier_lower_edge",
			profile: PreferenceProfile{PriceRange: &PriceRange{Max: ptr(500.0)}},
			want:    "premium luxury",
		},
		{
			name:    "premium_tier",
			profile: PreferenceProfile{PriceRange: &PriceRange{Max: ptr(900.0)}},
			want:    "premium luxury",
		},
		{
			name:    "min_only_emits_no_tier",
			profile: PreferenceProfile{PriceRange: &PriceRange{Min: ptr(20.0)}},
			want:    "",
		},
		{
			name: "history_uses_last_three",
			profile: PreferenceProfile{
				SearchHistory: []string{"boots", "scarf", "denim jacket", "linen shirt"},
			},
			want: "scarf denim jacket linen shirt",
		},
		{
			name: "all_stages_in_order",
			profile: PreferenceProfile{
				FavoriteBrands: []string{"Acme"},
				PriceRange:     &PriceRange{Min: ptr(10.0), Max: ptr(250.0)},
				SearchHistory:  []string{"running shoes"},
			},
			want: "Acme mid-range quality running shoes",
		},
		{
			name: "repeated_words_kept_once",
			profile: PreferenceProfile{
				FavoriteBrands: []string{"Acme"},
				PriceRange:     &PriceRange{Max: ptr(50.0)},
				SearchHistory:  []string{"acme boots", "Acme budget affordable boots"},
			},
			want: "Acme budget affordable boots",
		},
		{
			name: "blank_entries_ignored",
			profile: PreferenceProfile{
				FavoriteBrands: []string{"", "  "},
				SearchHistory:  []string{" "},
			},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompileQuery(tc.profile)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, CompileQuery(tc.profile), "compilation must be deterministic")
		})
	}
}

func TestCompileQuery_FeedbackThroughHistoryIsBounded(t *testing.T) {
	cases := []struct {
		name    string
		profile PreferenceProfile
		want    string
	}{
		{
			name:    "brand_only",
			profile: PreferenceProfile{FavoriteBrands: []string{"Acme"}},
			want:    "Acme",
		},
		{
			name: "all_stages",
			profile: PreferenceProfile{
				FavoriteBrands: []string{"Acme", "Zephyr"},
				PriceRange:     &PriceRange{Max: ptr(250.0)},
				SearchHistory:  []string{"rain boots"},
			},
			want: "Acme Zephyr mid-range quality rain boots",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := tc.profile
			for range 25 {
				profile.SearchHistory = AppendSearchHistory(profile.SearchHistory, CompileQuery(profile))
			}

			assert.Equal(t, tc.want, CompileQuery(profile))
		})
	}
}

func TestCompileQuery_WordCap(t *testing.T) {
	history := make([]string, 0, 3)
	for i := range 3 {
		words := make([]string, 0, 40)
		for j := range 40 {
			words = append(words, fmt.Sprintf("w%d_%d", i, j))
		}
		history = append(history, strings.Join(words, " "))
	}

	got := CompileQuery(PreferenceProfile{SearchHistory: history})

	assert.Len(t, strings.Fields(got), maxQueryWords)
	assert.True(t, strings.HasPrefix(got, "w0_0 w0_1 "))
}

func TestPriceTier(t *testing.T) {
	assert.Equal(t, PriceTierBudget, PriceTier(0))
	assert.Equal(t, PriceTierBudget, PriceTier(99.99))
	assert.Equal(t, PriceTierMid, PriceTier(499.99))
	assert.Equal(t, PriceTierPremium, PriceTier(10000))
}
