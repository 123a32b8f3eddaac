package domain

type Provenance string

const (
	ProvenanceSocial   Provenance = "social"
	ProvenanceSemantic Provenance = "semantic"
	ProvenanceFallback Provenance = "fallback"
)

// FeedItem is a product annotated with where it came from. It exists only for
// the lifetime of a single feed response.
type FeedItem struct {
	Product    *Product     `json:"product"`
	Provenance Provenance   `json:"provenance"`
	Source     string       `json:"source"`
	Score      *float64     `json:"score,omitempty"`
	ReferralID string       `json:"referral_id,omitempty"`
	SharedBy   *UserSummary `json:"shared_by,omitempty"`
	Message    *string      `json:"message,omitempty"`
}

type FeedResult struct {
	Items []FeedItem `json:"items"`
	Query string     `json:"query"`
}

func NewSocialFeedItem(referral SocialReferral) FeedItem {
	sender := referral.Sender
	if sender.ID == "" {
		sender.ID = referral.SenderID
	}
	return FeedItem{
		Product:    referral.Product,
		Provenance: ProvenanceSocial,
		Source:     "social: shared by " + sender.DisplayName(),
		ReferralID: referral.ID,
		SharedBy:   &sender,
		Message:    referral.Message,
	}
}

func NewSemanticFeedItem(match ScoredProduct) FeedItem {
	product := match.Product
	score := match.Score
	return FeedItem{
		Product:    &product,
		Provenance: ProvenanceSemantic,
		Source:     "semantic match",
		Score:      &score,
	}
}

func NewFallbackFeedItem(product Product) FeedItem {
	return FeedItem{
		Product:    &product,
		Provenance: ProvenanceFallback,
		Source:     "fallback",
	}
}

// DeduplicateFeedItems keeps the first item for each product ID, preserving order.
// Items without a product or with an empty product ID are dropped.
func DeduplicateFeedItems(items []FeedItem) []FeedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]FeedItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.ID == "" {
			continue
		}
		if _, ok := seen[item.Product.ID]; ok {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// MergeFeed concatenates social, semantic and supplement items in that priority
// order, deduplicates them, and caps the page at pageSize. Social items always
// lead, so the cap only ever shortens the non-social tail unless social items
// alone exceed the page.
func MergeFeed(social, semantic, supplement []FeedItem, pageSize int) []FeedItem {
	all := make([]FeedItem, 0, len(social)+len(semantic)+len(supplement))
	all = append(all, social...)
	all = append(all, semantic...)
	all = append(all, supplement...)

	merged := DeduplicateFeedItems(all)
	if pageSize >= 0 && len(merged) > pageSize {
		merged = merged[:pageSize]
	}
	return merged
}
