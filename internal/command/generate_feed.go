package command

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Step names used in logs and the feed_step_outcomes_total metric.
const (
	StepPreferences     = "preferences"
	StepReferrals       = "referrals"
	StepEmbed           = "embed"
	StepMatch           = "match"
	StepSupplement      = "supplement"
	StepSupplementBrand = "supplement_brand"
	StepHistory         = "history"
)

// GenerateFeedRequest is the request for the GenerateFeed command.
type GenerateFeedRequest struct {
	UserID string
}

// GenerateFeedConfig holds the feed tunables.
type GenerateFeedConfig struct {
	// SimilarityThreshold is the minimum match score for a semantic result.
	SimilarityThreshold float64

	// MatchLimit caps the number of semantic results requested from the vector index.
	MatchLimit int

	// PageSize caps the number of items in the returned feed.
	PageSize int

	// SupplementFloor is the semantic result count below which supplementation runs.
	SupplementFloor int

	// PerBrandLimit is how many products are fetched for each favorite brand.
	PerBrandLimit int

	// FilterLimit is how many products are fetched by price filter or recency.
	FilterLimit int

	// ReferralLimit caps the number of pending referrals placed at the top of the feed.
	ReferralLimit int

	// EmbedTimeout bounds the embedding provider call.
	EmbedTimeout time.Duration

	// HistoryWriteTimeout bounds the detached search history write.
	HistoryWriteTimeout time.Duration

	// FallbackQuery is searched when a user's profile compiles to nothing.
	FallbackQuery string
}

// GenerateFeedSources groups the collaborators the feed is assembled from.
type GenerateFeedSources struct {
	PreferenceGetter  datasources.PreferenceGetter
	PreferenceUpdater datasources.PreferenceUpdater
	ReferralLister    datasources.LatestReferralLister
	Embedder          datasources.Embedder
	VectorMatcher     datasources.SimilarProductsByVectorLister
	ProductFetcher    datasources.ProductFetcher
	BrandLister       datasources.ProductsByBrandLister
	FilterLister      datasources.ProductsByFilterLister
	RecentLister      datasources.RecentProductsLister
}

// GenerateFeed assembles a personalised feed from social referrals, semantic
// matches against the user's compiled preference query, and non-semantic
// supplements. Every upstream failure degrades the feed rather than failing it.
type GenerateFeed struct {
	GenerateFeedSources
	Config  GenerateFeedConfig
	Metrics *metrics.Collector

	pending sync.WaitGroup
}

// NewGenerateFeed creates a properly initialized GenerateFeed command.
func NewGenerateFeed(
	sources GenerateFeedSources,
	config GenerateFeedConfig,
	collector *metrics.Collector,
) *GenerateFeed {
	return &GenerateFeed{
		GenerateFeedSources: sources,
		Config:              config,
		Metrics:             collector,
	}
}

// Execute builds the feed for req.UserID. It only fails if the request carries no user.
func (c *GenerateFeed) Execute(ctx context.Context, req GenerateFeedRequest) (domain.FeedResult, error) {
	if req.UserID == "" {
		return domain.FeedResult{}, fmt.Errorf("generating feed: missing user ID")
	}

	start := time.Now()
	defer func() { c.Metrics.ObserveFeedDuration(time.Since(start)) }()

	var (
		profileOutcome  StepOutcome[*domain.PreferenceProfile]
		referralOutcome StepOutcome[[]domain.SocialReferral]
		g               errgroup.Group
	)
	g.Go(func() error {
		profileOutcome = runStep(ctx, c.Metrics, StepPreferences, req.UserID,
			func(ctx context.Context) (*domain.PreferenceProfile, error) {
				return c.PreferenceGetter.GetPreferences(ctx, req.UserID)
			})
		return nil
	})
	g.Go(func() error {
		referralOutcome = runStep(ctx, c.Metrics, StepReferrals, req.UserID,
			func(ctx context.Context) ([]domain.SocialReferral, error) {
				return c.ReferralLister.ListLatestReceivedReferrals(ctx, req.UserID, c.Config.ReferralLimit)
			})
		return nil
	})
	_ = g.Wait()

	var profile domain.PreferenceProfile
	profileExists := profileOutcome.Value != nil
	if profileExists {
		profile = *profileOutcome.Value
	}

	compiled := domain.CompileQuery(profile)
	query := compiled
	if query == "" {
		query = c.Config.FallbackQuery
	}

	semantic := c.semanticMatches(ctx, req.UserID, query)

	var supplement []domain.Product
	if len(semantic) < c.Config.SupplementFloor {
		supplement = runStep(ctx, c.Metrics, StepSupplement, req.UserID,
			func(ctx context.Context) ([]domain.Product, error) {
				return c.supplement(ctx, req.UserID, profile)
			}).Value
	}

	items := domain.MergeFeed(
		socialItems(referralOutcome.Value),
		semanticItems(semantic),
		fallbackItems(supplement),
		c.Config.PageSize,
	)
	c.recordItems(items)

	if compiled != "" && profileExists {
		c.recordSearch(ctx, req.UserID, profile.SearchHistory, compiled)
	}

	return domain.FeedResult{Items: items, Query: query}, nil
}

// Wait blocks until detached history writes started by Execute have finished.
func (c *GenerateFeed) Wait() {
	c.pending.Wait()
}

func (c *GenerateFeed) semanticMatches(ctx context.Context, userID, query string) []domain.ScoredProduct {
	embedding := runStep(ctx, c.Metrics, StepEmbed, userID,
		func(ctx context.Context) ([]float32, error) {
			embedCtx, cancel := context.WithTimeout(ctx, c.Config.EmbedTimeout)
			defer cancel()
			return c.Embedder.EmbedText(embedCtx, query)
		})
	if !embedding.OK() || len(embedding.Value) == 0 {
		return nil
	}

	return runStep(ctx, c.Metrics, StepMatch, userID,
		func(ctx context.Context) ([]domain.ScoredProduct, error) {
			matches, err := c.VectorMatcher.ListSimilarProductsByVector(
				ctx, embedding.Value, c.Config.SimilarityThreshold, c.Config.MatchLimit)
			if err != nil {
				return nil, fmt.Errorf("matching query vector: %w", err)
			}
			return hydrateMatches(ctx, c.ProductFetcher, matches)
		}).Value
}

// supplement prefers favorite brands, then the stored price range, then recency.
func (c *GenerateFeed) supplement(
	ctx context.Context,
	userID string,
	profile domain.PreferenceProfile,
) ([]domain.Product, error) {
	if brands := distinctBrands(profile.FavoriteBrands); len(brands) > 0 {
		return c.supplementByBrand(ctx, userID, brands), nil
	}

	if r := profile.PriceRange; r != nil && (r.Min != nil || r.Max != nil) {
		products, err := c.FilterLister.ListProductsByFilter(ctx,
			domain.ProductFilter{MinPrice: r.Min, MaxPrice: r.Max}, c.Config.FilterLimit, 0)
		if err != nil {
			return nil, fmt.Errorf("listing products by price range: %w", err)
		}
		return products, nil
	}

	products, err := c.RecentLister.ListRecentProducts(ctx, c.Config.FilterLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing recent products: %w", err)
	}
	return products, nil
}

// supplementByBrand queries each brand independently; a failing brand only
// loses its own products.
func (c *GenerateFeed) supplementByBrand(ctx context.Context, userID string, brands []string) []domain.Product {
	perBrand := make([][]domain.Product, len(brands))

	var g errgroup.Group
	for i, brand := range brands {
		g.Go(func() error {
			perBrand[i] = runStep(ctx, c.Metrics, StepSupplementBrand, userID,
				func(ctx context.Context) ([]domain.Product, error) {
					return c.BrandLister.ListProductsByBrand(ctx, brand, c.Config.PerBrandLimit, 0)
				}).Value
			return nil
		})
	}
	_ = g.Wait()

	var products []domain.Product
	for _, p := range perBrand {
		products = append(products, p...)
	}
	return products
}

// recordSearch appends the compiled query to the user's search history without
// holding up the response. Overlapping writes for one user are last-write-wins.
func (c *GenerateFeed) recordSearch(ctx context.Context, userID string, history []string, query string) {
	updated := domain.AppendSearchHistory(history, query)

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.Config.HistoryWriteTimeout)
		defer cancel()

		runStep(writeCtx, c.Metrics, StepHistory, userID,
			func(ctx context.Context) (Empty, error) {
				return Empty{}, c.PreferenceUpdater.UpdatePreferences(ctx, userID,
					domain.PreferenceUpdate{SearchHistory: &updated})
			})
	}()
}

func (c *GenerateFeed) recordItems(items []domain.FeedItem) {
	counts := make(map[domain.Provenance]int, 3)
	for _, item := range items {
		counts[item.Provenance]++
	}
	for provenance, n := range counts {
		c.Metrics.RecordFeedItems(string(provenance), n)
	}
}

func socialItems(referrals []domain.SocialReferral) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(referrals))
	for _, r := range referrals {
		items = append(items, domain.NewSocialFeedItem(r))
	}
	return items
}

func semanticItems(matches []domain.ScoredProduct) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, domain.NewSemanticFeedItem(m))
	}
	return items
}

func fallbackItems(products []domain.Product) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(products))
	for _, p := range products {
		items = append(items, domain.NewFallbackFeedItem(p))
	}
	return items
}

func distinctBrands(brands []string) []string {
	seen := make(map[string]struct{}, len(brands))
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
