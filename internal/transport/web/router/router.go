package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/controller"
	"github.com/gorilla/mux"
)

// Commands holds the command handlers served over HTTP.
type Commands struct {
	GenerateFeed        command.Command[command.GenerateFeedRequest, domain.FeedResult]
	UpdatePreferences   command.Command[command.UpdatePreferencesRequest, domain.PreferenceProfile]
	ShareProduct        command.Command[command.ShareProductRequest, domain.SocialReferral]
	DeleteReferral      command.Command[command.DeleteReferralRequest, command.Empty]
	CreateProduct       command.Command[command.CreateProductRequest, domain.Product]
	UpdateProduct       command.Command[command.UpdateProductRequest, domain.Product]
	DeleteProduct       command.Command[command.DeleteProductRequest, command.Empty]
	SemanticSearch      command.Command[command.SemanticSearchRequest, []domain.ScoredProduct]
	ListSimilarProducts command.Command[command.ListSimilarProductsRequest, []domain.ScoredProduct]
	CreateAPIToken      command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

type Config struct {
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	LatestCacheMaxAge  time.Duration
}

type Datasources struct {
	Catalog     datasources.CatalogRepository
	Preferences datasources.PreferenceGetter
	Referrals   datasources.ReferralRepository
	Tokens      datasources.APITokenRepository
	Users       datasources.UserRepository
}

func MakeRouter(
	logger *slog.Logger,
	config Config,
	sources Datasources,
	commands Commands,
	authMiddleware func(http.Handler) http.Handler,
	feedLimiter *RateLimiter,
	metricsHandler http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(newRequestLoggingMiddleware(logger))
	r.Use(corsMiddleware)
	r.MethodNotAllowedHandler = corsMiddleware(http.HandlerFunc(methodNotAllowed))
	r.NotFoundHandler = corsMiddleware(http.HandlerFunc(notFound))

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	// Routes carry the full /v1 path. Under a PathPrefix subrouter every
	// route repeats the prefix matcher, which clears an earlier method
	// mismatch and turns 405s into 404s.
	api := r.NewRoute().Subrouter()
	api.Use(authMiddleware)

	var feed http.Handler = controller.FeedGet{Command: commands.GenerateFeed}
	if feedLimiter != nil {
		feed = feedLimiter.Middleware(feed)
	}
	api.Handle("/v1/feed", requireAuthMiddleware(feed)).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/v1/preferences", requireAuthMiddleware(controller.PreferencesGet{
		Getter: sources.Preferences,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/preferences", requireAuthMiddleware(controller.PreferencesUpdate{
		Command: commands.UpdatePreferences,
	})).Methods(http.MethodPut)

	api.Handle("/v1/referrals/received", requireAuthMiddleware(controller.ReferralsReceivedList{
		Lister: sources.Referrals,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/referrals/sent", requireAuthMiddleware(controller.ReferralsSentList{
		Lister: sources.Referrals,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/referrals/stats", requireAuthMiddleware(controller.ReferralStats{
		Fetcher: sources.Referrals,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/referrals", requireAuthMiddleware(controller.ReferralCreate{
		Command: commands.ShareProduct,
	})).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/v1/referrals/{referral_id}", requireAuthMiddleware(controller.ReferralDelete{
		Command: commands.DeleteReferral,
	})).Methods(http.MethodDelete, http.MethodOptions)

	// Fixed paths must be registered before /products/{product_id}.
	api.Handle("/v1/products/search", controller.ProductsSearch{
		Command: commands.SemanticSearch,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products/rss", controller.RSS{
		FeedHostname:    config.RSSFeedBaseURL,
		FeedPath:        "/v1/products/rss",
		FeedAuthorName:  config.RSSFeedAuthorName,
		FeedAuthorEmail: config.RSSFeedAuthorEmail,
		Lister:          sources.Catalog,
		CacheMaxAge:     config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products/brands", controller.ProductBrands{
		Lister:      sources.Catalog,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products/tags", controller.ProductTags{
		Lister:      sources.Catalog,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products", controller.ProductsList{
		Lister:      sources.Catalog,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products", requireAuthMiddleware(controller.ProductCreate{
		Command: commands.CreateProduct,
	})).Methods(http.MethodPost)
	api.Handle("/v1/products/{product_id}", controller.ProductGet{
		Fetcher:     sources.Catalog,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/products/{product_id}", requireAuthMiddleware(controller.ProductUpdate{
		Command: commands.UpdateProduct,
	})).Methods(http.MethodPut)
	api.Handle("/v1/products/{product_id}", requireAuthMiddleware(controller.ProductDelete{
		Command: commands.DeleteProduct,
	})).Methods(http.MethodDelete)
	api.Handle("/v1/products/{product_id}/similar", controller.ProductsSimilar{
		Command: commands.ListSimilarProducts,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/v1/users/search", requireAuthMiddleware(controller.UsersSearch{
		Searcher: sources.Users,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/users/me", requireAuthMiddleware(controller.UserMeGet{
		Getter: sources.Users,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/users/me", requireAuthMiddleware(controller.UserMeUpdate{
		Upserter: sources.Users,
		Getter:   sources.Users,
	})).Methods(http.MethodPut)

	api.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: sources.Tokens,
	})).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: commands.CreateAPIToken,
	})).Methods(http.MethodPost)
	api.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: sources.Tokens,
	})).Methods(http.MethodDelete, http.MethodOptions)

	return r, nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeStatusMessage(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeStatusMessage(w, http.StatusMethodNotAllowed, "method not allowed")
}
