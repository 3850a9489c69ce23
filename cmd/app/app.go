// Package main is the entry point for the unit rates service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ratesservice/internal/config"
	"ratesservice/internal/metrics"
	"ratesservice/internal/provider"
	"ratesservice/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	registry   *prometheus.Registry
	httpServer *http.Server
}

// NewApp wires the rate pipeline and the HTTP server.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	app := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rateService := service.NewRateService(
		newRateProvider(cfg, logger),
		service.NewValidator(),
		service.NewRequestTransformer(cfg.Rates),
		metrics.NewRateMetrics(app.registry),
		logger,
	)

	app.initHTTP(rateService)
	return app
}

// newRateProvider makes a single attempt against the configured provider,
// then answers synthetically.
func newRateProvider(cfg *config.Config, logger *zap.SugaredLogger) provider.RatesProvider {
	remote := provider.NewGondwanaProvider(cfg.Upstream.URL, cfg.Upstream.TimeoutSec, cfg.Upstream.TLSVerify)
	if !cfg.Upstream.TLSVerify {
		logger.Warnw("TLS verification disabled for rates provider", "url", cfg.Upstream.URL)
	}
	return provider.NewFallbackProvider(logger, remote, provider.NewSyntheticProvider())
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests and drains in-flight ones; each may still
// be waiting on the provider for up to the upstream timeout.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	drain := time.Duration(app.cfg.Upstream.TimeoutSec)*time.Second + 5*time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
