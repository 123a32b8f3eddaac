package app

import (
	"context"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/router"
	"golang.org/x/time/rate"
)

// DefaultGenerateFeedConfig returns the feed tunables, overridable by FEED_* variables.
func DefaultGenerateFeedConfig(ctx context.Context) command.GenerateFeedConfig {
	return command.GenerateFeedConfig{
		SimilarityThreshold: GetEnvAsFloatOrDefault(ctx, "FEED_SIMILARITY_THRESHOLD", 0.6),
		MatchLimit:          GetEnvAsIntOrDefault(ctx, "FEED_MATCH_LIMIT", 20),
		PageSize:            GetEnvAsIntOrDefault(ctx, "FEED_PAGE_SIZE", 20),
		SupplementFloor:     GetEnvAsIntOrDefault(ctx, "FEED_SUPPLEMENT_FLOOR", 10),
		PerBrandLimit:       GetEnvAsIntOrDefault(ctx, "FEED_PER_BRAND_LIMIT", 5),
		FilterLimit:         GetEnvAsIntOrDefault(ctx, "FEED_FILTER_LIMIT", 10),
		ReferralLimit:       GetEnvAsIntOrDefault(ctx, "FEED_REFERRAL_LIMIT", 10),
		EmbedTimeout:        GetEnvAsDurationOrDefault(ctx, "FEED_EMBED_TIMEOUT", 5*time.Second),
		HistoryWriteTimeout: GetEnvAsDurationOrDefault(ctx, "FEED_HISTORY_WRITE_TIMEOUT", 5*time.Second),
		FallbackQuery:       GetEnvAsStringOrDefault("FEED_FALLBACK_QUERY", "trending items"),
	}
}

// DefaultSemanticSearchConfig returns the config shared by search and similar-product lookups.
func DefaultSemanticSearchConfig(ctx context.Context) command.SemanticSearchConfig {
	return command.SemanticSearchConfig{
		SimilarityThreshold: GetEnvAsFloatOrDefault(ctx, "SEARCH_SIMILARITY_THRESHOLD", 0.5),
		DefaultLimit:        20,
		MaxLimit:            100,
	}
}

func DefaultBackfillProductEmbeddingsConfig(ctx context.Context) command.BackfillProductEmbeddingsConfig {
	return command.BackfillProductEmbeddingsConfig{
		BatchSize: GetEnvAsIntOrDefault(ctx, "BACKFILL_BATCH_SIZE", 100),
	}
}

// DefaultFeedRateLimiterConfig allows a short burst of feed refreshes, then one per second.
func DefaultFeedRateLimiterConfig(ctx context.Context) router.RateLimiterConfig {
	return router.RateLimiterConfig{
		Rate:    rate.Limit(GetEnvAsFloatOrDefault(ctx, "FEED_RATE_LIMIT", 1)),
		Burst:   GetEnvAsIntOrDefault(ctx, "FEED_RATE_BURST", 5),
		IdleTTL: 10 * time.Minute,
	}
}
