package services

import (
	"fmt"
	"route-optimization-service/internal/domain"
)

// Build one vehicle's route with a greedy nearest-neighbor walk.
//
// Starting at the depot, the closest unvisited stop in assigned is visited
// next until none remain, then the route returns to the depot. Stops are
// tracked by canonical index, so two stops sharing a coordinate stay distinct.
// Ties keep the stop that appears first in assigned.
func NearestNeighborRoute(m domain.DistanceMatrix, assigned []int) (domain.Route, error) {
	for _, idx := range assigned {
		if idx < 1 || idx >= m.Size() {
			return nil, fmt.Errorf("nearest neighbor: stop index %d outside 1..%d", idx, m.Size()-1)
		}
	}

	if len(assigned) == 0 {
		return domain.TrivialRoute(), nil
	}

	route := make(domain.Route, 0, len(assigned)+2)
	route = append(route, 0)

	visited := make([]bool, len(assigned))
	current := 0

	for range assigned {
		best := -1
		bestDist := 0.0

		for k, idx := range assigned {
			if visited[k] {
				continue
			}
			// Strict comparison: the earlier entry wins equal distances.
			d := m[current][idx]
			if best == -1 || d < bestDist {
				best = k
				bestDist = d
			}
		}

		visited[best] = true
		current = assigned[best]
		route = append(route, current)
	}

	return append(route, 0), nil
}
