package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Optimizations counts completed optimizations by the engine that produced them
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_optimizations_total", Help: "Completed route optimizations by engine."},
		[]string{"engine"},
	)
	// Fallbacks counts heuristic fallbacks by reason
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_optimization_fallbacks_total", Help: "Heuristic fallbacks by reason."},
		[]string{"reason"},
	)
	// OptimizationDuration tracks end-to-end engine latency in seconds
	OptimizationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_optimization_duration_seconds", Help: "Route optimization duration in seconds.", Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}},
		[]string{"engine"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(Fallbacks)
		Registry.MustRegister(OptimizationDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// RecordOptimization observes one finished optimization. An empty reason
// means the exact path ran or was never attempted.
func RecordOptimization(engine, fallbackReason string, dur time.Duration) {
	Optimizations.WithLabelValues(engine).Inc()
	OptimizationDuration.WithLabelValues(engine).Observe(dur.Seconds())
	if fallbackReason != "" {
		Fallbacks.WithLabelValues(fallbackReason).Inc()
	}
}
