package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ratesservice/internal/api"
	"ratesservice/internal/api/middleware"
	"ratesservice/internal/service"
)

func (app *App) initHTTP(rateService service.RateServiceInterface) {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(app.cfg.Server.CORSAllowedOrigin))

	r.MethodNotAllowed(api.HandleMethodNotAllowed())

	r.Get("/", api.HandleIndex())
	r.Post("/rates", api.HandleGetRate(rateService))
	r.Get("/units", api.HandleListUnits(rateService))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.cfg.Upstream.URL))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	// WriteTimeout leaves room for a full upstream timeout plus the fallback.
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Duration(app.cfg.Upstream.TimeoutSec)*time.Second + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
