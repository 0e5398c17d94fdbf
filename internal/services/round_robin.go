package services

import (
	"errors"
)

// AssignRoundRobin partitions stops across vehicles by their position in the
// caller-supplied order: the stop at position i goes to vehicle i mod
// vehicleCount. Stops are returned as canonical indices (position + 1, since
// index 0 is the depot).
//
// The split ignores geography. Each vehicle receives floor(n/v) or ceil(n/v)
// stops.
func AssignRoundRobin(stopCount, vehicleCount int) ([][]int, error) {
	if vehicleCount < 1 {
		return nil, errors.New("assign stops: vehicle count must be at least 1")
	}
	if stopCount < 0 {
		return nil, errors.New("assign stops: stop count must not be negative")
	}

	perVehicle := (stopCount + vehicleCount - 1) / vehicleCount

	assigned := make([][]int, vehicleCount)
	for v := range assigned {
		assigned[v] = make([]int, 0, perVehicle)
	}

	for i := 0; i < stopCount; i++ {
		v := i % vehicleCount
		assigned[v] = append(assigned[v], i+1)
	}

	return assigned, nil
}
