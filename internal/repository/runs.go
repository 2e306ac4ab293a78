// Package repository persists generation-run history.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run records one completed generation run.
type Run struct {
	ID          string
	EventName   string
	EventDate   time.Time
	EventType   string
	ItemCount   int
	FailedCount int
	OutputPath  string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// RunRepo stores and lists generation runs.
type RunRepo interface {
	Record(ctx context.Context, r Run) error
	Recent(ctx context.Context, limit int) ([]Run, error)
}

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Record(ctx context.Context, run Run) error {
	query := `INSERT INTO generation_runs
		(id, event_name, event_date, event_type, item_count, failed_count, output_path, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.EventName,
		run.EventDate.Format("2006-01-02"),
		run.EventType,
		run.ItemCount,
		run.FailedCount,
		run.OutputPath,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting generation run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, event_name, event_date, event_type, item_count, failed_count, output_path, started_at, finished_at
		FROM generation_runs ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing generation runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var eventDate, startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &run.EventName, &eventDate, &run.EventType,
			&run.ItemCount, &run.FailedCount, &run.OutputPath, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning generation run: %w", err)
		}
		if run.EventDate, err = time.Parse("2006-01-02", eventDate); err != nil {
			return nil, fmt.Errorf("parsing event date: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt); err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
