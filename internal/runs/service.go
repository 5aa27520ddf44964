// Package runs lists recorded runs for display.
package runs

import (
	"context"

	"go.uber.org/zap"

	"github.com/eugenenazirov/runlog/internal/schemas"
	"github.com/eugenenazirov/runlog/internal/urlutil"
)

// Service is the run source backed by the configured activity API.
type Service struct {
	apiBaseURL string
	logger     *zap.Logger
}

// NewService constructs a Service for the given API base URL, which may be empty.
func NewService(apiBaseURL string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		apiBaseURL: apiBaseURL,
		logger:     logger.Named("runs"),
	}
}

// APIHost returns the API base URL without its http(s) scheme.
func (s *Service) APIHost() string {
	return urlutil.StripScheme(s.apiBaseURL)
}

// ListRuns returns the known runs. The activity API is not queried yet, so
// the result is always empty.
func (s *Service) ListRuns(_ context.Context) []schemas.Run {
	s.logger.Debug("listing runs", zap.String("api_host", s.APIHost()))
	return []schemas.Run{}
}
