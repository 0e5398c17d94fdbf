package api

import (
	"net/http"
	"route-optimization-service/internal/api/handlers"
	"route-optimization-service/internal/platform/metrics"
	"route-optimization-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Deps carries everything the HTTP layer needs from the composition root.
type Deps struct {
	Optimizer ports.RouteOptimizer
	Runs      ports.RunRepository
	Events    ports.EventPublisher

	MaxVehicles     int
	MaxStops        int
	RateRPS         float64
	RateBurst       int
	CORSAllowOrigin string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{
		Optimizer:   d.Optimizer,
		Runs:        d.Runs,
		Events:      d.Events,
		MaxVehicles: d.MaxVehicles,
		MaxStops:    d.MaxStops,
	}
	runsHandler := &handlers.RunsHandler{Runs: d.Runs}
	readyHandler := &handlers.ReadyHandler{Deps: []any{d.Runs, d.Events}}

	var limiter *rate.Limiter
	if d.RateRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(d.RateRPS), d.RateBurst)
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/ready", readyHandler.Ready)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/api/routing/optimize", rateLimit(limiter, optimizeHandler.Optimize))
	mux.HandleFunc("/api/routing/runs", runsHandler.List)

	origin := d.CORSAllowOrigin
	if origin == "" {
		origin = "*"
	}

	return requestIDMiddleware(loggingMiddleware(recoverMiddleware(corsMiddleware(origin, mux))))
}
