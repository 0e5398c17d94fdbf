package ports

import (
	"context"
	"route-optimization-service/internal/domain"
)

// Port: a boundary for persisting and listing optimization run summaries.
type RunRepository interface {
	SaveRun(ctx context.Context, run domain.OptimizationRun) error

	// ListRuns returns up to limit runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.OptimizationRun, error)
}

// Optional extension for repositories backed by a remote store.
type Pinger interface {
	Ping(ctx context.Context) error
}
