package events

import (
	"route-optimization-service/internal/domain"
	"time"
)

const (
	RunCompletedType    = "optimization.completed"
	RunCompletedChannel = "routing:optimization.completed"
)

// Wire form of a completed optimization run.
type RunCompletedEvent struct {
	Type            string    `json:"type"`
	RunID           string    `json:"runId"`
	CreatedAt       time.Time `json:"createdAt"`
	VehicleCount    int       `json:"vehicleCount"`
	StopCount       int       `json:"stopCount"`
	Engine          string    `json:"engine"`
	FallbackReason  string    `json:"fallbackReason,omitempty"`
	TotalDistanceKm float64   `json:"totalDistanceKm"`
	DurationMs      int64     `json:"durationMs"`
}

func NewRunCompletedEvent(run domain.OptimizationRun) RunCompletedEvent {
	return RunCompletedEvent{
		Type:            RunCompletedType,
		RunID:           run.RunID,
		CreatedAt:       run.CreatedAt.UTC(),
		VehicleCount:    run.VehicleCount,
		StopCount:       run.StopCount,
		Engine:          string(run.Engine),
		FallbackReason:  run.FallbackReason,
		TotalDistanceKm: run.TotalDistanceKm,
		DurationMs:      run.Duration.Milliseconds(),
	}
}
