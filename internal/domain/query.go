package domain

import "strings"

const (
	PriceTierBudget  = "budget affordable"
	PriceTierMid     = "mid-range quality"
	PriceTierPremium = "premium luxury"
)

// recentQueryTerms is how many of the latest searches feed into a compiled query.
const recentQueryTerms = 3

// maxQueryWords bounds the compiled query handed to the embedding provider.
const maxQueryWords = 64

// CompileQuery turns a preference profile into a semantic query string: favorite
// brands, then a price tier keyword, then the most recent searches. Repeated
// words are kept only at their first position, so compiled queries fed back
// through search history do not grow. An empty result means the profile
// carries nothing to personalise on.
func CompileQuery(profile PreferenceProfile) string {
	var stages []string

	if brands := nonBlank(profile.FavoriteBrands); len(brands) > 0 {
		stages = append(stages, strings.Join(brands, " "))
	}

	if profile.PriceRange != nil && profile.PriceRange.Max != nil {
		stages = append(stages, PriceTier(*profile.PriceRange.Max))
	}

	history := nonBlank(profile.SearchHistory)
	if len(history) > recentQueryTerms {
		history = history[len(history)-recentQueryTerms:]
	}
	if len(history) > 0 {
		stages = append(stages, strings.Join(history, " "))
	}

	return strings.Join(distinctWords(stages), " ")
}

// distinctWords splits stages into words, dropping case-insensitive repeats
// and anything past maxQueryWords.
func distinctWords(stages []string) []string {
	var words []string
	seen := make(map[string]struct{})
	for _, stage := range stages {
		for _, word := range strings.Fields(stage) {
			key := strings.ToLower(word)
			if _, ok := seen[key]; ok {
				continue
			}
			if len(words) == maxQueryWords {
				return words
			}
			seen[key] = struct{}{}
			words = append(words, word)
		}
	}
	return words
}

// PriceTier maps an upper price bound to a coarse keyword.
func PriceTier(maxPrice float64) string {
	switch {
	case maxPrice < 100:
		return PriceTierBudget
	case maxPrice < 500:
		return PriceTierMid
	default:
		return PriceTierPremium
	}
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
