package services

import (
	"context"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridPoints(n int) []domain.Point {
	points := make([]domain.Point, 0, n+1)
	points = append(points, domain.Point{Lat: 40.0, Lng: -74.0})
	for i := 0; i < n; i++ {
		points = append(points, domain.Point{
			Lat: 40.0 + float64(i%7)*0.013,
			Lng: -74.0 + float64(i/7)*0.017,
		})
	}
	return points
}

func TestHeuristicSolverCoverage(t *testing.T) {
	m := geo.BuildMatrix(gridPoints(5))

	rs, err := NewHeuristicSolver(0).Solve(context.Background(), m, 2)
	require.NoError(t, err)
	require.NoError(t, rs.CheckCoverage(5, 2))
	assert.Equal(t, domain.EngineHeuristic, rs.Engine)

	// Round-robin: vehicle 0 holds {1,3,5}, vehicle 1 holds {2,4}.
	assert.ElementsMatch(t, []int{1, 3, 5}, rs.Routes[0].Stops())
	assert.ElementsMatch(t, []int{2, 4}, rs.Routes[1].Stops())
}

func TestHeuristicSolverMatchesSequentialBuild(t *testing.T) {
	m := geo.BuildMatrix(gridPoints(60))

	parallel, err := NewHeuristicSolver(8).Solve(context.Background(), m, 7)
	require.NoError(t, err)
	sequential, err := NewHeuristicSolver(1).Solve(context.Background(), m, 7)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestHeuristicSolverDepotOnly(t *testing.T) {
	rs, err := NewHeuristicSolver(0).Solve(context.Background(), domain.DistanceMatrix{{0}}, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Route{{0, 0}, {0, 0}, {0, 0}}, rs.Routes)
}

func TestHeuristicSolverIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs, err := NewHeuristicSolver(0).Solve(ctx, geo.BuildMatrix(gridPoints(4)), 2)
	require.NoError(t, err)
	assert.NoError(t, rs.CheckCoverage(4, 2))
}

func TestHeuristicSolverEmptyMatrix(t *testing.T) {
	_, err := NewHeuristicSolver(0).Solve(context.Background(), nil, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
