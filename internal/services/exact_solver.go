package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"time"
)

const (
	DefaultExactMaxStops         = 300
	DefaultExactTimeout          = 2 * time.Second
	exactSolverProbeTimeout      = 500 * time.Millisecond
	exactSolverProbeStopCount    = 2
	exactSolverProbeVehicleCount = 1
)

type ExactOptions struct {
	// Largest stop count the exact path accepts.
	MaxStops int
	// Time budget for a single Solve call.
	Timeout time.Duration
	// Routes with at most this many stops are re-sequenced optimally after
	// the first solution. Zero leaves the first solution untouched.
	HeldKarpMaxStops int
}

// withDefaults fills zero limits and clamps HeldKarpMaxStops to what the
// Held-Karp table can hold.
func (o ExactOptions) withDefaults() ExactOptions {
	if o.MaxStops <= 0 {
		o.MaxStops = DefaultExactMaxStops
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultExactTimeout
	}
	if o.HeldKarpMaxStops < 0 {
		o.HeldKarpMaxStops = 0
	}
	if o.HeldKarpMaxStops > maxHeldKarpStops {
		o.HeldKarpMaxStops = maxHeldKarpStops
	}
	return o
}

// ExactSolver is the in-process constraint backend. It solves capacity-free
// multi-vehicle routing on integer metre costs with a cheapest-arc first
// solution. Small routes are re-sequenced exactly only when
// HeldKarpMaxStops is set.
type ExactSolver struct {
	opts ExactOptions
}

func NewExactSolver(opts ExactOptions) *ExactSolver {
	return &ExactSolver{opts: opts.withDefaults()}
}

func (s *ExactSolver) Name() domain.Engine { return domain.EngineExact }

// Supports reports whether the exact path is worth running for pointCount
// points, depot included.
func (s *ExactSolver) Supports(pointCount int) bool {
	return pointCount > 1 && pointCount-1 <= s.opts.MaxStops
}

// Solve returns ports.ErrInfeasible when no complete assignment is found
// within the configured time budget.
func (s *ExactSolver) Solve(ctx context.Context, m domain.DistanceMatrix, vehicleCount int) (rs domain.RouteSet, err error) {
	defer obs.Time(ctx, "exact solve")(&err)

	if vehicleCount < 1 {
		return domain.RouteSet{}, fmt.Errorf("exact solve: %w: vehicle count %d", ErrInvalidInput, vehicleCount)
	}
	if m.Size() < 2 {
		return domain.RouteSet{}, fmt.Errorf("exact solve: %w: need at least one stop", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	costs := m.Meters()

	routes, err := cheapestArcRoutes(ctx, costs, vehicleCount)
	if err != nil {
		return domain.RouteSet{}, fmt.Errorf("exact solve: %w", err)
	}

	for v, r := range routes {
		stops := r.Stops()
		if len(stops) < 3 || len(stops) > s.opts.HeldKarpMaxStops {
			continue
		}

		order, err := heldKarpOrder(ctx, costs, stops)
		if err != nil {
			return domain.RouteSet{}, fmt.Errorf("exact solve: vehicle %d: %w", v, err)
		}

		seq := make(domain.Route, 0, len(order)+2)
		seq = append(seq, 0)
		seq = append(seq, order...)
		routes[v] = append(seq, 0)
	}

	return domain.RouteSet{Routes: routes, Engine: domain.EngineExact}, nil
}

// Exact solver modes accepted by configuration.
const (
	ExactModeAuto = "auto"
	ExactModeOff  = "off"
)

// ProbeExactSolver decides once, at startup, whether the exact backend is
// usable. It runs a tiny known instance and returns nil when the backend is
// disabled or misbehaves, in which case every request takes the heuristic
// path.
func ProbeExactSolver(mode string, opts ExactOptions) ports.RouteSolver {
	if mode == ExactModeOff {
		log.Printf("exact solver disabled mode=%s", mode)
		return nil
	}

	s := NewExactSolver(opts)

	probe := domain.DistanceMatrix{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}

	ctx, cancel := context.WithTimeout(context.Background(), exactSolverProbeTimeout)
	defer cancel()

	rs, err := s.Solve(ctx, probe, exactSolverProbeVehicleCount)
	if err == nil {
		err = rs.CheckCoverage(exactSolverProbeStopCount, exactSolverProbeVehicleCount)
	}
	if err != nil {
		if errors.Is(err, ports.ErrInfeasible) {
			log.Printf("exact solver unavailable: probe found no solution: %v", err)
		} else {
			log.Printf("exact solver unavailable: probe failed: %v", err)
		}
		return nil
	}

	log.Printf(
		"exact solver available max_stops=%d timeout=%s held_karp_max_stops=%d",
		s.opts.MaxStops, s.opts.Timeout, s.opts.HeldKarpMaxStops,
	)
	return s
}
