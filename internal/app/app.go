package app

import (
	"context"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/router"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Component interface {
	Run(ctx context.Context) error
}

// Setup builds the API server components. The returned cleanup func must be
// called once every component has stopped.
func Setup(ctx context.Context) ([]Component, func(), error) {
	repo, err := setupMySQLRepository(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up MySQL repository: %w", err)
	}

	similarity, closeSimilarity, err := setupSimilarityRepository(ctx, repo)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	embedder, closeEmbedder, err := setupEmbedder(ctx, collector)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up embedder: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	generateFeedCmd := command.NewGenerateFeed(
		command.GenerateFeedSources{
			PreferenceGetter:  repo,
			PreferenceUpdater: repo,
			ReferralLister:    repo,
			Embedder:          embedder,
			VectorMatcher:     similarity,
			ProductFetcher:    repo,
			BrandLister:       repo,
			FilterLister:      repo,
			RecentLister:      repo,
		},
		DefaultGenerateFeedConfig(ctx),
		collector,
	)
	indexProductCmd := command.NewIndexProduct(embedder, repo, similarity)
	searchConfig := DefaultSemanticSearchConfig(ctx)

	feedLimiter := router.NewRateLimiter(DefaultFeedRateLimiterConfig(ctx))

	httpRouter, err := router.MakeRouter(
		domain.LoggerFromContext(ctx),
		router.Config{
			RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			LatestCacheMaxAge:  MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		},
		router.Datasources{
			Catalog:     repo,
			Preferences: repo,
			Referrals:   repo,
			Tokens:      repo,
			Users:       repo,
		},
		router.Commands{
			GenerateFeed:        generateFeedCmd,
			UpdatePreferences:   command.NewUpdatePreferences(repo, repo),
			ShareProduct:        command.NewShareProduct(repo, repo, repo),
			DeleteReferral:      command.NewDeleteReferral(repo, repo),
			CreateProduct:       command.NewCreateProduct(repo, indexProductCmd),
			UpdateProduct:       command.NewUpdateProduct(repo, repo, indexProductCmd),
			DeleteProduct:       command.NewDeleteProduct(repo, similarity),
			SemanticSearch:      command.NewSemanticSearch(embedder, similarity, repo, searchConfig),
			ListSimilarProducts: command.NewListSimilarProducts(embedder, similarity, repo, searchConfig),
			CreateAPIToken:      command.NewCreateAPIToken(repo, repo),
		},
		authMiddleware,
		feedLimiter,
		metrics.Handler(registry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	cleanup := func() {
		generateFeedCmd.Wait()
		closeEmbedder()
		if err := closeSimilarity(); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "closing similarity repository", "error", err)
		}
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		feedLimiter,
	}, cleanup, nil
}

// SetupBackfill builds the command that embeds and indexes products missing an embedding.
func SetupBackfill(ctx context.Context) (*command.BackfillProductEmbeddings, func() error, error) {
	repo, err := setupMySQLRepository(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up MySQL repository: %w", err)
	}

	similarity, closeSimilarity, err := setupSimilarityRepository(ctx, repo)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	embedder, closeEmbedder, err := setupEmbedder(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up embedder: %w", err)
	}

	cmd := command.NewBackfillProductEmbeddings(
		repo,
		command.NewIndexProduct(embedder, repo, similarity),
		DefaultBackfillProductEmbeddingsConfig(ctx),
	)
	return cmd, func() error {
		closeEmbedder()
		return closeSimilarity()
	}, nil
}
