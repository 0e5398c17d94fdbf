package events

import (
	"context"
	"log"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// LogPublisher writes run events to the standard logger when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishRunCompleted(ctx context.Context, run domain.OptimizationRun) error {
	log.Printf(
		"req_id=%s event=%s run_id=%s engine=%s vehicles=%d stops=%d total_km=%.3f dur=%dms",
		obs.RequestID(ctx), RunCompletedType, run.RunID, run.Engine,
		run.VehicleCount, run.StopCount, run.TotalDistanceKm, run.Duration.Milliseconds(),
	)
	return nil
}
