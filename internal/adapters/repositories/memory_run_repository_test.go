package repositories

import (
	"context"
	"fmt"
	"route-optimization-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRunRepositoryNewestFirst(t *testing.T) {
	repo := NewMemoryRunRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.SaveRun(ctx, domain.OptimizationRun{RunID: fmt.Sprintf("run-%d", i)}))
	}

	runs, err := repo.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-3", runs[0].RunID)
	assert.Equal(t, "run-1", runs[2].RunID)

	runs, err = repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestMemoryRunRepositoryWrapsAround(t *testing.T) {
	repo := NewMemoryRunRepository()
	ctx := context.Background()

	total := MaxListLimit + 25
	for i := 1; i <= total; i++ {
		require.NoError(t, repo.SaveRun(ctx, domain.OptimizationRun{RunID: fmt.Sprintf("run-%d", i)}))
	}

	runs, err := repo.ListRuns(ctx, 500)
	require.NoError(t, err)
	require.Len(t, runs, MaxListLimit)
	assert.Equal(t, fmt.Sprintf("run-%d", total), runs[0].RunID)
	assert.Equal(t, fmt.Sprintf("run-%d", total-MaxListLimit+1), runs[MaxListLimit-1].RunID)
}

func TestMemoryRunRepositoryEmpty(t *testing.T) {
	runs, err := NewMemoryRunRepository().ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ClampLimit(0))
	assert.Equal(t, DefaultListLimit, ClampLimit(-3))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, MaxListLimit, ClampLimit(MaxListLimit+1))
}

func TestPostgresRunRepositoryNilDB(t *testing.T) {
	repo := NewPostgresRunRepository(nil)
	ctx := context.Background()

	assert.Error(t, repo.SaveRun(ctx, domain.OptimizationRun{}))
	_, err := repo.ListRuns(ctx, 5)
	assert.Error(t, err)
	assert.Error(t, repo.Ping(ctx))
	assert.Error(t, InitSchema(ctx, nil))
	_, err = PruneRuns(ctx, nil, time.Now())
	assert.Error(t, err)
}
