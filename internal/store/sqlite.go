package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		workload         TEXT NOT NULL,
		process_count    INTEGER NOT NULL,
		time_quantum     INTEGER NOT NULL,
		mean_turnarounds TEXT NOT NULL,
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath. Use ":memory:"
// for tests.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// WAL keeps concurrent readers cheap.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Safe to call repeatedly.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveRun inserts one run record.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *SimulationRun) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	workloadJSON, err := json.Marshal(run.Workload)
	if err != nil {
		return fmt.Errorf("marshal workload: %w", err)
	}
	meansJSON, err := json.Marshal(run.MeanTurnarounds)
	if err != nil {
		return fmt.Errorf("marshal means: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, workload, process_count, time_quantum, mean_turnarounds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, string(workloadJSON), run.ProcessCount, run.TimeQuantum,
		string(meansJSON), run.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// GetRun fetches one run by ID. A missing ID yields (nil, nil).
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*SimulationRun, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, workload, process_count, time_quantum, mean_turnarounds, created_at
		 FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// ListRuns returns a page of runs, newest first, plus the total count.
func (s *SQLiteStore) ListRuns(ctx context.Context, opts ListOptions) ([]*SimulationRun, int, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, workload, process_count, time_quantum, mean_turnarounds, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var runs []*SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}
	return runs, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*SimulationRun, error) {
	var run SimulationRun
	var workloadJSON, meansJSON, createdAt string

	if err := row.Scan(&run.ID, &workloadJSON, &run.ProcessCount, &run.TimeQuantum,
		&meansJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(workloadJSON), &run.Workload); err != nil {
		return nil, fmt.Errorf("unmarshal workload: %w", err)
	}
	if err := json.Unmarshal([]byte(meansJSON), &run.MeanTurnarounds); err != nil {
		return nil, fmt.Errorf("unmarshal means: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = ts
	return &run, nil
}
