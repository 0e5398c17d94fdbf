package dto

// Pointer fields distinguish an omitted value from an explicit zero.
type OptimizeRequest struct {
	DepotLat     *float64      `json:"depotLat"`
	DepotLng     *float64      `json:"depotLng"`
	VehicleCount *int          `json:"vehicleCount"`
	Stops        []StopRequest `json:"stops"`
}

type StopRequest struct {
	OrderID            string   `json:"orderId"`
	Lat                *float64 `json:"lat"`
	Lng                *float64 `json:"lng"`
	ServiceTimeMinutes *int     `json:"serviceTimeMinutes"`
}

type OptimizeResponse struct {
	Routes      [][]int   `json:"routes"`
	Engine      string    `json:"engine"`
	RunID       string    `json:"runId"`
	DistancesKm []float64 `json:"distancesKm"`
}
