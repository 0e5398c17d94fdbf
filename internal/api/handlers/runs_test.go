package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsList(t *testing.T) {
	runs := &recordingRuns{}
	for i := 0; i < 30; i++ {
		runs.saved = append(runs.saved, domain.OptimizationRun{
			RunID:    fmt.Sprintf("run-%d", i),
			Engine:   domain.EngineExact,
			Duration: 3 * time.Millisecond,
		})
	}
	h := &RunsHandler{Runs: runs}

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 20},
		{query: "?limit=5", want: 5},
		{query: "?limit=1000", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, "/api/routing/runs"+tt.query, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var res dto.ListRunsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Len(t, res.Runs, tt.want)
			assert.Equal(t, "ortools", res.Runs[0].Engine)
			assert.Equal(t, int64(3), res.Runs[0].DurationMs)
		})
	}
}

func TestRunsListBadLimit(t *testing.T) {
	h := &RunsHandler{Runs: &recordingRuns{}}

	for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-2"} {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/api/routing/runs"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestRunsListRepositoryError(t *testing.T) {
	h := &RunsHandler{Runs: &recordingRuns{listErr: errors.New("timeout")}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/routing/runs", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
