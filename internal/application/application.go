package application

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/eugenenazirov/runlog/internal/api"
	"github.com/eugenenazirov/runlog/internal/config"
	"github.com/eugenenazirov/runlog/internal/runs"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	cfg     *config.Config
	runs    *runs.Service
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	runService := runs.NewService(cfg.APIBaseURL, logger)
	handler := api.NewHandler()
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		cfg:     cfg,
		runs:    runService,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	a.logger.Info("runs service configured", zap.String("api_host", a.runs.APIHost()))
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Runs returns the run listing service.
func (a *App) Runs() *runs.Service {
	return a.runs
}

// Handler returns the root HTTP handler with middleware applied.
func (a *App) Handler() http.Handler {
	return a.router
}
