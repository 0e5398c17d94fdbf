package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"time"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Postgres-backed implementation of the RunRepository port.
type PostgresRunRepository struct{ DB *sql.DB }

func NewPostgresRunRepository(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{DB: db}
}

func (p *PostgresRunRepository) SaveRun(ctx context.Context, run domain.OptimizationRun) (err error) {
	defer obs.Time(ctx, "save run")(&err)

	if p.DB == nil {
		return errors.New("postgres run repository: DB is nil")
	}

	query := `
	INSERT INTO optimization_runs (
		run_id,
		created_at,
		vehicle_count,
		stop_count,
		engine,
		fallback_reason,
		total_distance_km,
		duration_ms
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = p.DB.ExecContext(
		ctx, query,
		run.RunID, run.CreatedAt.UTC(), run.VehicleCount, run.StopCount,
		string(run.Engine), run.FallbackReason, run.TotalDistanceKm, run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save run: insert run_id=%s: %w", run.RunID, err)
	}

	return nil
}

// Return the most recent runs, newest first.
func (p *PostgresRunRepository) ListRuns(ctx context.Context, limit int) (runs []domain.OptimizationRun, err error) {
	defer obs.Time(ctx, "list runs")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres run repository: DB is nil")
	}

	query := `
	SELECT
		run_id::text,
		created_at,
		vehicle_count,
		stop_count,
		engine,
		fallback_reason,
		total_distance_km,
		duration_ms
	FROM optimization_runs
	ORDER BY created_at DESC, run_id
	LIMIT $1;
	`
	rows, err := p.DB.QueryContext(ctx, query, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list runs: query optimization_runs table: %w", err)
	}
	defer rows.Close()

	runs = make([]domain.OptimizationRun, 0, ClampLimit(limit))
	for rows.Next() {
		var run domain.OptimizationRun
		var engine string
		var durationMs int64
		err := rows.Scan(
			&run.RunID, &run.CreatedAt, &run.VehicleCount, &run.StopCount,
			&engine, &run.FallbackReason, &run.TotalDistanceKm, &durationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}
		run.Engine = domain.Engine(engine)
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}

func (p *PostgresRunRepository) Ping(ctx context.Context) error {
	if p.DB == nil {
		return errors.New("postgres run repository: DB is nil")
	}
	if err := p.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// ClampLimit maps a requested page size onto 1..MaxListLimit, using
// DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
