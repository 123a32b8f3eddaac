package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	cmdmocks "github.com/danielyoungkimball/oneoff-mvp/internal/command/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testAuthMiddleware trusts the X-Test-User header.
func testAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-Test-User"); userID != "" {
			r = r.WithContext(domain.ContextWithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

func TestMakeRouter(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		path       string
		userID     string
		setup      func(cmds testCommands)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "feed_requires_auth",
			method:     http.MethodGet,
			path:       "/v1/feed",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "feed_for_user",
			method: http.MethodGet,
			path:   "/v1/feed",
			userID: "user-1",
			setup: func(cmds testCommands) {
				cmds.feed.EXPECT().
					Execute(mock.Anything, command.GenerateFeedRequest{UserID: "user-1"}).
					Return(domain.FeedResult{Query: "trending items"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"items":[],"query":"trending items"}`,
		},
		{
			name:   "search_not_captured_by_product_id",
			method: http.MethodGet,
			path:   "/v1/products/search?q=boots",
			setup: func(cmds testCommands) {
				cmds.search.EXPECT().
					Execute(mock.Anything, command.SemanticSearchRequest{Query: "boots"}).
					Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[]}`,
		},
		{
			name:       "unknown_product",
			method:     http.MethodGet,
			path:       "/v1/products/p-404",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "rss_feed",
			method:     http.MethodGet,
			path:       "/v1/products/rss",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preferences_update_requires_auth",
			method:     http.MethodPut,
			path:       "/v1/preferences",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "tokens_require_auth",
			method:     http.MethodGet,
			path:       "/v1/tokens",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "cors_preflight",
			method:     http.MethodOptions,
			path:       "/v1/feed",
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
			wantBody:   "metrics",
		},
		{
			name:       "wrong_method",
			method:     http.MethodPatch,
			path:       "/v1/feed",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"message":"method not allowed"}`,
		},
		{
			name:       "wrong_method_on_parameterised_route",
			method:     http.MethodPatch,
			path:       "/v1/products/p1",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown_route",
			method:     http.MethodGet,
			path:       "/v1/nothing-here",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"not found"}`,
		},
		{
			name:       "brands_not_captured_by_product_id",
			method:     http.MethodGet,
			path:       "/v1/products/brands",
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[]}`,
		},
		{
			name:       "tags_not_captured_by_product_id",
			method:     http.MethodGet,
			path:       "/v1/products/tags",
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[]}`,
		},
		{
			name:       "product_update_requires_auth",
			method:     http.MethodPut,
			path:       "/v1/products/p1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "product_delete_requires_auth",
			method:     http.MethodDelete,
			path:       "/v1/products/p1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user_search_requires_auth",
			method:     http.MethodGet,
			path:       "/v1/users/search?q=al",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmds := testCommands{
				feed:   cmdmocks.NewMockCommand[command.GenerateFeedRequest, domain.FeedResult](t),
				search: cmdmocks.NewMockCommand[command.SemanticSearchRequest, []domain.ScoredProduct](t),
			}
			if c.setup != nil {
				c.setup(cmds)
			}

			metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("metrics"))
			})
			handler, err := MakeRouter(
				testLogger(),
				Config{RSSFeedBaseURL: "example.com", LatestCacheMaxAge: time.Minute},
				Datasources{Catalog: datasources.NullCatalogRepository{}},
				Commands{GenerateFeed: cmds.feed, SemanticSearch: cmds.search},
				testAuthMiddleware,
				NewRateLimiter(RateLimiterConfig{Rate: 10, Burst: 10, IdleTTL: time.Minute}),
				metricsHandler,
			)
			require.NoError(t, err)

			req := httptest.NewRequest(c.method, c.path, nil)
			if c.userID != "" {
				req.Header.Set("X-Test-User", c.userID)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			if c.wantBody != "" {
				if c.wantBody == "metrics" {
					assert.Equal(t, c.wantBody, rec.Body.String())
				} else {
					assert.JSONEq(t, c.wantBody, rec.Body.String())
				}
			}
		})
	}
}

type testCommands struct {
	feed   *cmdmocks.MockCommand[command.GenerateFeedRequest, domain.FeedResult]
	search *cmdmocks.MockCommand[command.SemanticSearchRequest, []domain.ScoredProduct]
}
