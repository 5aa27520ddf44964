package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

type rateLimiter interface {
	Allow() bool
}

// retryAdvisor is implemented by limiters that can tell a rejected client
// how long to back off.
type retryAdvisor interface {
	RetryAfter() time.Duration
}

// tokenBucket is a rateLimiter over x/time/rate. A nil bucket allows everything.
type tokenBucket struct {
	limiter *rate.Limiter
}

// newTokenBucketLimiter refills ratePerSecond tokens up to burst. Non-positive values are raised to 1.
func newTokenBucketLimiter(ratePerSecond float64, burst int) *tokenBucket {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), max(burst, 1)),
	}
}

func (b *tokenBucket) Allow() bool {
	return b == nil || b.limiter == nil || b.limiter.Allow()
}

// RetryAfter is the time needed to refill a single token.
func (b *tokenBucket) RetryAfter() time.Duration {
	if b == nil || b.limiter == nil || b.limiter.Limit() <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / float64(b.limiter.Limit()))
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		wait := time.Second
		if advisor, ok := limiter.(retryAdvisor); ok {
			wait = advisor.RetryAfter()
		}
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}
