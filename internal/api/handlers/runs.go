package handlers

import (
	"log"
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"strconv"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

type RunsHandler struct {
	Runs ports.RunRepository
}

// List returns recent optimization runs, newest first.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultRunsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.Runs.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("req_id=%s list runs failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, dto.RunResponse{
			RunID:           run.RunID,
			CreatedAt:       run.CreatedAt,
			VehicleCount:    run.VehicleCount,
			StopCount:       run.StopCount,
			Engine:          string(run.Engine),
			FallbackReason:  run.FallbackReason,
			TotalDistanceKm: run.TotalDistanceKm,
			DurationMs:      run.Duration.Milliseconds(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
