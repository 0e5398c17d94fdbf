package domain

import (
	"fmt"
)

// Engine identifies which solver path produced a RouteSet.
type Engine string

const (
	// EngineExact keeps the wire name existing dashboard clients switch on.
	EngineExact     Engine = "ortools"
	EngineHeuristic Engine = "heuristic"
)

// Ordered visiting sequence for one vehicle, as indices into the canonical
// point list. A valid Route starts and ends at the depot (index 0).
type Route []int

// TrivialRoute is the route of a vehicle with no assigned stops.
func TrivialRoute() Route { return Route{0, 0} }

// Stops returns the stop indices between the two depot visits.
func (r Route) Stops() []int {
	if len(r) < 2 {
		return nil
	}
	return r[1 : len(r)-1]
}

// IsTrivial reports whether the route visits no stops.
func (r Route) IsTrivial() bool { return len(r) == 2 && r[0] == 0 && r[1] == 0 }

// Represents the outcome of one optimization request: one Route per vehicle,
// the engine that built it and, when the exact path was skipped or failed,
// the reason the heuristic ran instead.
type RouteSet struct {
	Routes         []Route
	Engine         Engine
	FallbackReason string
	DistancesKm    []float64
}

// TotalDistanceKm sums DistancesKm.
func (rs RouteSet) TotalDistanceKm() float64 {
	total := 0.0
	for _, d := range rs.DistancesKm {
		total += d
	}
	return total
}

// CheckCoverage verifies the structural invariants of a RouteSet: exactly
// vehicleCount routes, each bounded by the depot, and every stop index in
// 1..stopCount visited exactly once across the whole set.
func (rs RouteSet) CheckCoverage(stopCount, vehicleCount int) error {
	if len(rs.Routes) != vehicleCount {
		return fmt.Errorf("route set: got %d routes, want %d", len(rs.Routes), vehicleCount)
	}

	seen := make([]bool, stopCount+1)
	visited := 0
	for v, r := range rs.Routes {
		if len(r) < 2 {
			return fmt.Errorf("route set: vehicle %d route %v is shorter than [0 0]", v, r)
		}
		if r[0] != 0 || r[len(r)-1] != 0 {
			return fmt.Errorf("route set: vehicle %d route %v does not start and end at the depot", v, r)
		}

		for _, idx := range r.Stops() {
			if idx < 1 || idx > stopCount {
				return fmt.Errorf("route set: vehicle %d visits index %d outside 1..%d", v, idx, stopCount)
			}
			if seen[idx] {
				return fmt.Errorf("route set: stop index %d visited more than once", idx)
			}
			seen[idx] = true
			visited++
		}
	}

	if visited != stopCount {
		missing := make([]int, 0, stopCount-visited)
		for idx := 1; idx <= stopCount; idx++ {
			if !seen[idx] {
				missing = append(missing, idx)
			}
		}
		return fmt.Errorf("route set: stop indices %v left unassigned", missing)
	}

	return nil
}
