package services

import (
	"context"
	"fmt"
	"route-optimization-service/internal/domain"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// HeuristicSolver is the always-available fallback: round-robin partition
// followed by a nearest-neighbor walk per vehicle.
type HeuristicSolver struct {
	parallelism int
}

// NewHeuristicSolver returns a solver that builds at most parallelism
// vehicle routes concurrently. Values below 1 use GOMAXPROCS.
func NewHeuristicSolver(parallelism int) *HeuristicSolver {
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	return &HeuristicSolver{parallelism: parallelism}
}

func (s *HeuristicSolver) Name() domain.Engine { return domain.EngineHeuristic }

// Solve ignores ctx cancellation: the work is bounded and quadratic in the
// per-vehicle stop count, and a fallback must always produce routes.
func (s *HeuristicSolver) Solve(ctx context.Context, m domain.DistanceMatrix, vehicleCount int) (domain.RouteSet, error) {
	if m.Size() == 0 {
		return domain.RouteSet{}, fmt.Errorf("heuristic solve: %w: distance matrix has no depot", ErrInvalidInput)
	}

	partition, err := AssignRoundRobin(m.Size()-1, vehicleCount)
	if err != nil {
		return domain.RouteSet{}, fmt.Errorf("heuristic solve: %w", err)
	}

	routes := make([]domain.Route, vehicleCount)

	var g errgroup.Group
	g.SetLimit(s.parallelism)

	for v, assigned := range partition {
		if len(assigned) == 0 {
			routes[v] = domain.TrivialRoute()
			continue
		}

		// Each goroutine writes only its own slot, so the result matches a
		// sequential build exactly.
		g.Go(func() error {
			r, err := NearestNeighborRoute(m, assigned)
			if err != nil {
				return fmt.Errorf("vehicle %d: %w", v, err)
			}
			routes[v] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.RouteSet{}, fmt.Errorf("heuristic solve: %w", err)
	}

	return domain.RouteSet{Routes: routes, Engine: domain.EngineHeuristic}, nil
}
