package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sunny-bhakta/payments-service/internal/api"
	"github.com/sunny-bhakta/payments-service/internal/config"
	"github.com/sunny-bhakta/payments-service/internal/domain"
	"github.com/sunny-bhakta/payments-service/internal/metrics"
	"github.com/sunny-bhakta/payments-service/internal/ratelimiter"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
	listener   net.Listener
}

// New constructs the application. It does not bind the listener.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", domain.ErrInvalidConfig)
	}

	var deps api.Deps
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		metrics.RegisterRuntime(reg)
		deps.Metrics = metrics.New(reg)
		deps.Gatherer = reg
	}
	if cfg.RateLimit.Enabled() {
		deps.Limiter = ratelimiter.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		logger.Info("per-client rate limiting enabled",
			zap.Float64("rps", cfg.RateLimit.RPS),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           api.NewRouter(cfg.HTTP, deps, logger),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}, nil
}

// Listen binds the configured address. A failure here is fatal to start.
func (a *App) Listen() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrListen, a.httpServer.Addr, err)
	}
	a.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (a *App) Addr() string {
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return a.httpServer.Addr
}

// Serve blocks serving requests on the bound listener. It returns nil once
// Shutdown has been called.
func (a *App) Serve() error {
	if a.listener == nil {
		return fmt.Errorf("%w: serve called before listen", domain.ErrListen)
	}
	a.logger.Info("server starting", zap.String("addr", a.Addr()))
	if err := a.httpServer.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Run binds and serves.
func (a *App) Run() error {
	if err := a.Listen(); err != nil {
		return err
	}
	return a.Serve()
}

// Shutdown stops accepting new connections and waits for in-flight requests
// until ctx expires.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Info("server stopped cleanly")
	return nil
}
