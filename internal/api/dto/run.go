package dto

import "time"

type RunResponse struct {
	RunID           string    `json:"runId"`
	CreatedAt       time.Time `json:"createdAt"`
	VehicleCount    int       `json:"vehicleCount"`
	StopCount       int       `json:"stopCount"`
	Engine          string    `json:"engine"`
	FallbackReason  string    `json:"fallbackReason,omitempty"`
	TotalDistanceKm float64   `json:"totalDistanceKm"`
	DurationMs      int64     `json:"durationMs"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}
