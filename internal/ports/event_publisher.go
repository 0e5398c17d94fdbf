package ports

import (
	"context"
	"route-optimization-service/internal/domain"
)

// Port: announces completed optimization runs to downstream consumers.
type EventPublisher interface {
	PublishRunCompleted(ctx context.Context, run domain.OptimizationRun) error
}
