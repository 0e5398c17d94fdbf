package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultVehicleCount       = 3
	defaultServiceTimeMinutes = 5
	maxRequestBodyBytes       = 1 << 20
)

type OptimizeHandler struct {
	Optimizer   ports.RouteOptimizer
	Runs        ports.RunRepository
	Events      ports.EventPublisher
	MaxVehicles int
	MaxStops    int
}

// Optimize validates the request, runs the route engine and records the run.
// Recording and publishing are best effort and never fail the request.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	depot, stops, vehicleCount, err := h.parseRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	rs, err := h.Optimizer.Optimize(r.Context(), depot, stops, vehicleCount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("req_id=%s optimize routes failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	run := domain.OptimizationRun{
		RunID:           uuid.NewString(),
		CreatedAt:       start.UTC(),
		VehicleCount:    len(rs.Routes),
		StopCount:       len(stops),
		Engine:          rs.Engine,
		FallbackReason:  rs.FallbackReason,
		TotalDistanceKm: rs.TotalDistanceKm(),
		Duration:        time.Since(start),
	}
	h.record(r, run)

	res := dto.OptimizeResponse{
		Routes:      make([][]int, 0, len(rs.Routes)),
		Engine:      string(rs.Engine),
		RunID:       run.RunID,
		DistancesKm: rs.DistancesKm,
	}
	for _, route := range rs.Routes {
		res.Routes = append(res.Routes, []int(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseRequest applies defaults and rejects anything the engine cannot take.
func (h *OptimizeHandler) parseRequest(req dto.OptimizeRequest) (domain.Point, []domain.Stop, int, error) {
	if req.DepotLat == nil || req.DepotLng == nil {
		return domain.Point{}, nil, 0, errors.New("depotLat and depotLng are required")
	}
	depot := domain.Point{Lat: *req.DepotLat, Lng: *req.DepotLng}
	if err := services.ValidatePoint(depot); err != nil {
		return domain.Point{}, nil, 0, fmt.Errorf("depot: %w", err)
	}

	vehicleCount := defaultVehicleCount
	if req.VehicleCount != nil {
		vehicleCount = max(*req.VehicleCount, 1)
	}
	if h.MaxVehicles > 0 && vehicleCount > h.MaxVehicles {
		return domain.Point{}, nil, 0, fmt.Errorf("vehicleCount must be at most %d", h.MaxVehicles)
	}

	if h.MaxStops > 0 && len(req.Stops) > h.MaxStops {
		return domain.Point{}, nil, 0, fmt.Errorf("at most %d stops are allowed", h.MaxStops)
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for i, s := range req.Stops {
		orderID := strings.TrimSpace(s.OrderID)
		if orderID == "" {
			return domain.Point{}, nil, 0, fmt.Errorf("stops[%d]: orderId is required", i)
		}
		if s.Lat == nil || s.Lng == nil {
			return domain.Point{}, nil, 0, fmt.Errorf("stops[%d]: lat and lng are required", i)
		}

		p := domain.Point{Lat: *s.Lat, Lng: *s.Lng}
		if err := services.ValidatePoint(p); err != nil {
			return domain.Point{}, nil, 0, fmt.Errorf("stops[%d]: %w", i, err)
		}

		serviceMinutes := defaultServiceTimeMinutes
		if s.ServiceTimeMinutes != nil {
			serviceMinutes = *s.ServiceTimeMinutes
		}
		if serviceMinutes < 0 {
			return domain.Point{}, nil, 0, fmt.Errorf("stops[%d]: serviceTimeMinutes must not be negative", i)
		}

		stops = append(stops, domain.Stop{
			OrderID:     orderID,
			Point:       p,
			ServiceTime: time.Duration(serviceMinutes) * time.Minute,
		})
	}

	return depot, stops, vehicleCount, nil
}

func (h *OptimizeHandler) record(r *http.Request, run domain.OptimizationRun) {
	ctx := r.Context()

	if h.Runs != nil {
		if err := h.Runs.SaveRun(ctx, run); err != nil {
			log.Printf("req_id=%s save run failed run_id=%s: %v", obs.RequestID(ctx), run.RunID, err)
		}
	}

	if h.Events != nil {
		if err := h.Events.PublishRunCompleted(ctx, run); err != nil {
			log.Printf("req_id=%s publish run failed run_id=%s: %v", obs.RequestID(ctx), run.RunID, err)
		}
	}
}
