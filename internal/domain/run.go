package domain

import "time"

// Summary of one completed optimization request, recorded outside the engine
// for the run history and event stream.
type OptimizationRun struct {
	RunID           string
	CreatedAt       time.Time
	VehicleCount    int
	StopCount       int
	Engine          Engine
	FallbackReason  string
	TotalDistanceKm float64
	Duration        time.Duration
}
