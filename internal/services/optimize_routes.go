package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
	"route-optimization-service/internal/platform/metrics"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"time"
)

// Reasons the heuristic ran instead of the exact solver.
const (
	FallbackUnavailable = "unavailable"
	FallbackSizeLimit   = "size_limit"
	FallbackInfeasible  = "infeasible"
	FallbackError       = "error"
)

// Engine turns a depot, a stop list and a vehicle count into one route per
// vehicle. It prefers the exact solver when one was wired at startup and the
// problem fits, and otherwise (or on any exact failure) uses the heuristic.
//
// Engine holds no per-request state; a single value serves all requests.
type Engine struct {
	exact     ports.RouteSolver
	heuristic ports.RouteSolver
}

// NewEngine wires the solvers. exact may be nil when the capability probe
// found no usable backend; heuristic must not be nil.
func NewEngine(exact, heuristic ports.RouteSolver) *Engine {
	return &Engine{exact: exact, heuristic: heuristic}
}

// ExactAvailable reports whether an exact solver is wired.
func (e *Engine) ExactAvailable() bool { return e.exact != nil }

// Optimize never returns empty routes for valid input. Routes index the
// canonical list [depot, stops...]; vehicleCount below 1 is treated as 1.
func (e *Engine) Optimize(ctx context.Context, depot domain.Point, stops []domain.Stop, vehicleCount int) (rs domain.RouteSet, err error) {
	defer obs.Time(ctx, "optimize routes")(&err)
	start := time.Now()

	if vehicleCount < 1 {
		vehicleCount = 1
	}

	m := geo.BuildMatrix(domain.CanonicalPoints(depot, stops))

	if len(stops) == 0 {
		rs = trivialRouteSet(vehicleCount)
		metrics.RecordOptimization(string(rs.Engine), "", time.Since(start))
		return rs, nil
	}

	reason := e.exactSkipReason(m.Size())
	if reason == "" {
		rs, err = e.solveExact(ctx, m, len(stops), vehicleCount)
		if err == nil {
			rs.DistancesKm = routeDistances(m, rs.Routes)
			metrics.RecordOptimization(string(rs.Engine), "", time.Since(start))
			return rs, nil
		}
		reason = fallbackReason(err)
		log.Printf("req_id=%s exact solver failed, falling back reason=%s err=%v", obs.RequestID(ctx), reason, err)
	} else {
		log.Printf("req_id=%s exact solver skipped reason=%s stops=%d", obs.RequestID(ctx), reason, len(stops))
	}

	rs, err = e.heuristic.Solve(ctx, m, vehicleCount)
	if err != nil {
		return domain.RouteSet{}, fmt.Errorf("optimize routes: %w: %v", ErrInvariantViolated, err)
	}
	if err := rs.CheckCoverage(len(stops), vehicleCount); err != nil {
		return domain.RouteSet{}, fmt.Errorf("optimize routes: %w: %v", ErrInvariantViolated, err)
	}

	rs.Engine = domain.EngineHeuristic
	rs.FallbackReason = reason
	rs.DistancesKm = routeDistances(m, rs.Routes)
	metrics.RecordOptimization(string(rs.Engine), reason, time.Since(start))

	return rs, nil
}

// exactSkipReason returns "" when the exact path should be attempted.
func (e *Engine) exactSkipReason(pointCount int) string {
	if e.exact == nil {
		return FallbackUnavailable
	}
	if sized, ok := e.exact.(ports.SizedSolver); ok && !sized.Supports(pointCount) {
		return FallbackSizeLimit
	}
	return ""
}

// solveExact treats a structurally invalid exact result like any other
// solver failure.
func (e *Engine) solveExact(ctx context.Context, m domain.DistanceMatrix, stopCount, vehicleCount int) (domain.RouteSet, error) {
	rs, err := e.exact.Solve(ctx, m, vehicleCount)
	if err != nil {
		return domain.RouteSet{}, err
	}
	if err := rs.CheckCoverage(stopCount, vehicleCount); err != nil {
		return domain.RouteSet{}, fmt.Errorf("exact result rejected: %w", err)
	}

	rs.Engine = e.exact.Name()
	rs.FallbackReason = ""
	return rs, nil
}

func fallbackReason(err error) string {
	if errors.Is(err, ports.ErrInfeasible) {
		return FallbackInfeasible
	}
	return FallbackError
}

func trivialRouteSet(vehicleCount int) domain.RouteSet {
	routes := make([]domain.Route, vehicleCount)
	distances := make([]float64, vehicleCount)
	for v := range routes {
		routes[v] = domain.TrivialRoute()
	}
	return domain.RouteSet{Routes: routes, Engine: domain.EngineHeuristic, DistancesKm: distances}
}

func routeDistances(m domain.DistanceMatrix, routes []domain.Route) []float64 {
	out := make([]float64, len(routes))
	for v, r := range routes {
		out[v] = m.RouteLength(r)
	}
	return out
}
