package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mysql"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/openai"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/pinecone"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/qdrant"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/resilience"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/voyageai"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/router"
)

const defaultEmbeddingCacheBytes = 64 << 20

func setupMySQLRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func noClose() error { return nil }

func setupSimilarityRepository(
	ctx context.Context,
	repo *mysql.Repository,
) (datasources.SimilarityRepository, func() error, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, noClose, nil
	case "mysql":
		return repo, noClose, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			GetEnvAsStringOrDefault("PINECONE_NAMESPACE", ""),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, noClose, nil
	case "qdrant":
		client, err := qdrant.NewClient(qdrant.Config{
			Host:       MustGetEnvAsString(ctx, "QDRANT_HOST"),
			Port:       GetEnvAsIntOrDefault(ctx, "QDRANT_PORT", 6334),
			Collection: GetEnvAsStringOrDefault("QDRANT_COLLECTION", "products"),
			APIKey:     GetEnvAsStringOrDefault("QDRANT_API_KEY", ""),
			UseTLS:     GetEnvAsBooleanOrDefault(ctx, "QDRANT_USE_TLS", false),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to qdrant: %w", err)
		}
		if dimension := GetEnvAsIntOrDefault(ctx, "QDRANT_VECTOR_DIMENSION", 0); dimension > 0 {
			if err := client.EnsureCollection(ctx, dimension); err != nil {
				_ = client.Close()
				return nil, nil, fmt.Errorf("ensuring qdrant collection: %w", err)
			}
		}
		return client, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

// setupEmbedder wraps the configured provider in a cache and a circuit breaker.
// The cache sits outside the breaker so cached texts are served while it is open.
func setupEmbedder(ctx context.Context, collector *metrics.Collector) (datasources.Embedder, func(), error) {
	var provider datasources.Embedder
	switch driver := MustGetEnvAsString(ctx, "EMBEDDING_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, func() {}, nil
	case "openai":
		provider = openai.NewClient(
			MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			GetEnvAsStringOrDefault("OPENAI_EMBEDDING_MODEL", openai.DefaultModel),
			GetEnvAsStringOrDefault("OPENAI_BASE_URL", openai.DefaultBaseURL),
		)
	case "voyageai":
		provider = voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
			GetEnvAsStringOrDefault("VOYAGEAI_BASE_URL", voyageai.DefaultBaseURL),
			GetEnvAsIntOrDefault(ctx, "VOYAGEAI_OUTPUT_DIMENSION", 0),
		)
	default:
		return nil, nil, fmt.Errorf("unknown embedding driver [%s]", driver)
	}

	breaker := resilience.NewBreakerEmbedder(ctx, provider, resilience.DefaultBreakerConfig("embedding"), collector)

	cache, err := resilience.NewCachingEmbedder(
		breaker,
		int64(GetEnvAsIntOrDefault(ctx, "EMBEDDING_CACHE_MAX_BYTES", defaultEmbeddingCacheBytes)),
		GetEnvAsDurationOrDefault(ctx, "EMBEDDING_CACHE_TTL", time.Hour),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating embedding cache: %w", err)
	}
	return cache, cache.Close, nil
}

func setupAuthMiddleware(
	ctx context.Context, tokens datasources.APITokenRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, tokens, tokens))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
