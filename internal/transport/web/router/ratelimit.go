package router

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	// Rate is the sustained requests per second allowed for each user.
	Rate rate.Limit
	// Burst is how many requests a user may make at once.
	Burst int
	// IdleTTL is how long an unused limiter is kept.
	IdleTTL time.Duration
}

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps a token bucket per user. Requests without a user are not limited;
// requireAuthMiddleware rejects those on the routes that use it.
type RateLimiter struct {
	config RateLimiterConfig
	now    func() time.Time

	mu       sync.Mutex
	limiters map[string]*userLimiter
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		config:   config,
		now:      time.Now,
		limiters: make(map[string]*userLimiter),
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" || rl.allow(userID) {
			next.ServeHTTP(w, r)
			return
		}

		logger := domain.LoggerFromContext(r.Context())
		logger.WarnContext(r.Context(), "rate limit exceeded", "path", r.URL.Path)

		w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
		writeStatusMessage(w, http.StatusTooManyRequests, "too many requests")
	})
}

func (rl *RateLimiter) allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	ul, ok := rl.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = now

	return ul.limiter.AllowN(now, 1)
}

// Prune drops limiters idle for longer than IdleTTL and returns how many remain.
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for userID, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > rl.config.IdleTTL {
			delete(rl.limiters, userID)
		}
	}
	return len(rl.limiters)
}

// Run prunes idle limiters until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(rl.config.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Prune()
		case <-ctx.Done():
			return nil
		}
	}
}

// retryAfterSeconds estimates the time until one more token is available.
func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.config.Rate <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(rl.config.Rate))))
}
