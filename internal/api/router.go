package api

import (
	"net/http"

	"go.uber.org/zap"
)

// RouterOption configures the behaviour of NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	enableLogging bool
	logger        *zap.Logger
	rateLimiter   rateLimiter
}

// WithLogging controls whether access logs are emitted.
func WithLogging(enabled bool) RouterOption {
	return func(cfg *routerConfig) {
		cfg.enableLogging = enabled
	}
}

// WithRateLimit configures the token bucket limiter. A zero rate or burst disables limiting.
func WithRateLimit(ratePerSecond float64, burst int) RouterOption {
	return func(cfg *routerConfig) {
		cfg.rateLimiter = nil
		if ratePerSecond > 0 && burst > 0 {
			cfg.rateLimiter = newTokenBucketLimiter(ratePerSecond, burst)
		}
	}
}

// WithRateLimiter replaces the limiter outright, which tests use to force decisions.
func WithRateLimiter(limiter rateLimiter) RouterOption {
	return func(cfg *routerConfig) {
		cfg.rateLimiter = limiter
	}
}

// NewRouter registers the routes and wraps them in the middleware chain.
// Requests pass through request id, rate limit, access log and panic
// recovery, in that order, before reaching the mux.
func NewRouter(handler *Handler, logger *zap.Logger, opts ...RouterOption) http.Handler {
	cfg := routerConfig{
		enableLogging: true,
		logger:        logger,
		rateLimiter:   newTokenBucketLimiter(25, 50),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.handleRoot)

	stack := []middleware{
		requestIDMiddleware,
		func(next http.Handler) http.Handler { return rateLimitMiddleware(cfg.rateLimiter, next) },
	}
	if cfg.enableLogging {
		stack = append(stack, func(next http.Handler) http.Handler { return loggingMiddleware(cfg.logger, next) })
	}
	stack = append(stack, func(next http.Handler) http.Handler { return recoveryMiddleware(cfg.logger, next) })

	return chain(mux, stack...)
}
