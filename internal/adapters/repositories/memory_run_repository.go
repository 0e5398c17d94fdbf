package repositories

import (
	"context"
	"route-optimization-service/internal/domain"
	"sync"
)

// In-memory implementation of the RunRepository port, used when no database
// is configured. It keeps the most recent MaxListLimit runs.
type MemoryRunRepository struct {
	mu   sync.Mutex
	runs []domain.OptimizationRun
	next int
	full bool
}

func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{runs: make([]domain.OptimizationRun, MaxListLimit)}
}

func (m *MemoryRunRepository) SaveRun(ctx context.Context, run domain.OptimizationRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[m.next] = run
	m.next = (m.next + 1) % len(m.runs)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// Return the most recent runs, newest first.
func (m *MemoryRunRepository) ListRuns(ctx context.Context, limit int) ([]domain.OptimizationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.next
	if m.full {
		size = len(m.runs)
	}

	n := min(ClampLimit(limit), size)
	out := make([]domain.OptimizationRun, 0, n)
	for i := 1; i <= n; i++ {
		idx := (m.next - i + len(m.runs)) % len(m.runs)
		out = append(out, m.runs[idx])
	}
	return out, nil
}
