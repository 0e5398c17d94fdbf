package services

import (
	"context"
	"fmt"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/ports"
)

// cheapestArcRoutes builds a first solution for vehicleCount vehicles that
// all start at the depot. Each step extends the vehicle whose tail has the
// globally cheapest arc to an unrouted stop; ties go to the lower vehicle
// index, then the lower stop index. No improvement pass follows.
func cheapestArcRoutes(ctx context.Context, costs [][]int64, vehicleCount int) ([]domain.Route, error) {
	stopCount := len(costs) - 1

	routes := make([]domain.Route, vehicleCount)
	tails := make([]int, vehicleCount)
	for v := range routes {
		routes[v] = domain.Route{0}
	}

	routed := make([]bool, stopCount+1)
	routed[0] = true

	for step := 0; step < stopCount; step++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cheapest arc: %w: %v", ports.ErrInfeasible, err)
		}

		bestVehicle, bestStop := -1, -1
		bestCost := noArc
		idleSeen := false

		for v, tail := range tails {
			// Idle vehicles all sit at the depot with identical arcs, so only
			// the lowest-indexed one can ever win a tie.
			if tail == 0 {
				if idleSeen {
					continue
				}
				idleSeen = true
			}

			row := costs[tail]
			for s := 1; s <= stopCount; s++ {
				if routed[s] {
					continue
				}
				if row[s] < bestCost {
					bestCost = row[s]
					bestVehicle, bestStop = v, s
				}
			}
		}

		if bestVehicle < 0 {
			return nil, fmt.Errorf("cheapest arc: %w: no usable arc after %d of %d stops", ports.ErrInfeasible, step, stopCount)
		}

		routes[bestVehicle] = append(routes[bestVehicle], bestStop)
		tails[bestVehicle] = bestStop
		routed[bestStop] = true
	}

	for v := range routes {
		routes[v] = append(routes[v], 0)
	}

	return routes, nil
}
