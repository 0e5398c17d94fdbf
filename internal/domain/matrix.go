package domain

import (
	"math"
)

// DistanceMatrix holds pairwise distances in kilometres over the canonical
// point list. It is built once per request and never mutated afterwards.
type DistanceMatrix [][]float64

// Size returns the number of points the matrix covers (depot included).
func (m DistanceMatrix) Size() int { return len(m) }

// Meters projects the matrix onto integer metres, rounded down.
// Non-finite entries become math.MaxInt64, which solvers treat as "no arc".
func (m DistanceMatrix) Meters() [][]int64 {
	out := make([][]int64, len(m))
	for i, row := range m {
		out[i] = make([]int64, len(row))
		for j, km := range row {
			meters := math.Floor(km * 1000)
			if math.IsNaN(meters) || math.IsInf(meters, 0) || meters >= math.MaxInt64 {
				out[i][j] = math.MaxInt64
				continue
			}
			out[i][j] = int64(meters)
		}
	}
	return out
}

// RouteLength sums the matrix entries along consecutive indices of r.
func (m DistanceMatrix) RouteLength(r Route) float64 {
	total := 0.0
	for i := 1; i < len(r); i++ {
		total += m[r[i-1]][r[i]]
	}
	return total
}
