package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiter_Middleware(t *testing.T) {
	cases := []struct {
		name           string
		config         RateLimiterConfig
		requests       []string
		wantStatuses   []int
		wantRetryAfter string
	}{
		{
			name:           "burst_allowed_then_limited",
			config:         RateLimiterConfig{Rate: 1, Burst: 2, IdleTTL: time.Minute},
			requests:       []string{"u1", "u1", "u1"},
			wantStatuses:   []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
			wantRetryAfter: "1",
		},
		{
			name:           "users_limited_independently",
			config:         RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute},
			requests:       []string{"u1", "u2", "u1"},
			wantStatuses:   []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
			wantRetryAfter: "1",
		},
		{
			name:           "slow_rate_rounds_retry_up",
			config:         RateLimiterConfig{Rate: rate.Every(90 * time.Second), Burst: 1, IdleTTL: time.Minute},
			requests:       []string{"u1", "u1"},
			wantStatuses:   []int{http.StatusOK, http.StatusTooManyRequests},
			wantRetryAfter: "90",
		},
		{
			name:         "anonymous_requests_not_limited",
			config:       RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute},
			requests:     []string{"", "", ""},
			wantStatuses: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limiter := NewRateLimiter(c.config)
			now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
			limiter.now = func() time.Time { return now }
			handler := limiter.Middleware(okHandler())

			var lastRetryAfter string
			for i, userID := range c.requests {
				req := withUser(httptest.NewRequest(http.MethodGet, "/v1/feed", nil), userID)
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				require.Equal(t, c.wantStatuses[i], rec.Code, "request %d", i)
				if rec.Code == http.StatusTooManyRequests {
					lastRetryAfter = rec.Header().Get("Retry-After")
					assert.JSONEq(t, `{"message":"too many requests"}`, rec.Body.String())
				}
			}
			assert.Equal(t, c.wantRetryAfter, lastRetryAfter)
		})
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute})
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("u1"))
	assert.False(t, limiter.allow("u1"))

	now = now.Add(time.Second)
	assert.True(t, limiter.allow("u1"))
}

func TestRateLimiter_Prune(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute})
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("idle")
	now = now.Add(50 * time.Second)
	limiter.allow("active")
	now = now.Add(20 * time.Second)

	assert.Equal(t, 1, limiter.Prune())
	_, ok := limiter.limiters["active"]
	assert.True(t, ok)
}
