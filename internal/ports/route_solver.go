package ports

import (
	"context"
	"errors"
	"route-optimization-service/internal/domain"
)

// ErrInfeasible is returned by a solver that could not produce a complete
// assignment within its limits (no solution, or time budget exhausted).
var ErrInfeasible = errors.New("route solver: no feasible solution")

// Port: a strategy that turns a distance matrix into one route per vehicle.
// Index 0 of the matrix is the depot; indices 1..n are the stops.
type RouteSolver interface {
	// Name identifies the engine tag attached to results from this solver.
	Name() domain.Engine

	// Solve returns exactly vehicleCount routes covering every stop once.
	Solve(ctx context.Context, m domain.DistanceMatrix, vehicleCount int) (domain.RouteSet, error)
}

// Optional extension for solvers that only handle problems up to a certain size.
type SizedSolver interface {
	// Supports reports whether a problem with pointCount points (depot
	// included) is within the solver's limits.
	Supports(pointCount int) bool
}

// Port: the full optimization use case as seen by the HTTP layer.
type RouteOptimizer interface {
	Optimize(ctx context.Context, depot domain.Point, stops []domain.Stop, vehicleCount int) (domain.RouteSet, error)
}
