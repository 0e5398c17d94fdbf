package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Initialize the Postgres schema for optimization run history.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		run_id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		vehicle_count INTEGER NOT NULL,
		stop_count INTEGER NOT NULL,
		engine TEXT NOT NULL,
		fallback_reason TEXT NOT NULL DEFAULT '',
		total_distance_km DOUBLE PRECISION NOT NULL,
		duration_ms BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_optimization_runs_created_at
	ON optimization_runs(created_at DESC);
	`

	statements := []string{
		createRunsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PruneRuns deletes runs created before cutoff and returns how many were removed.
func PruneRuns(ctx context.Context, db *sql.DB, cutoff time.Time) (int64, error) {
	if db == nil {
		return 0, errors.New("prune runs: DB is nil")
	}

	query := `
	DELETE FROM optimization_runs
	WHERE created_at < $1;
	`
	res, err := db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune runs: delete: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune runs: rows affected: %w", err)
	}

	return n, nil
}
