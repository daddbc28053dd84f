package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite-backed Store. It keeps a single table of
// completed run summaries; there is no checkpoint or resume schema.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (and if needed creates) a SQLite database at path
// and ensures the run-summary table exists. Pass ":memory:" for an
// ephemeral database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening sqlite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: enabling WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: setting busy timeout: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) createTable(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS search_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			strategy TEXT NOT NULL,
			lower_bound REAL,
			upper_bound REAL,
			nb_explored INTEGER NOT NULL,
			nb_solutions INTEGER NOT NULL,
			best_cost REAL,
			duration_ms INTEGER NOT NULL,
			recorded_at TIMESTAMP NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("history: creating search_runs table: %w", err)
	}
	return nil
}

// Record implements Store.
func (s *SQLiteStore) Record(ctx context.Context, run Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, fmt.Errorf("history: store is closed")
	}

	if run.RecordedAt.IsZero() {
		return 0, fmt.Errorf("history: run.RecordedAt must be set")
	}

	const insert = `
		INSERT INTO search_runs
			(label, strategy, lower_bound, upper_bound, nb_explored, nb_solutions, best_cost, duration_ms, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, insert,
		run.Label, run.Strategy, run.LowerBound, run.UpperBound,
		run.NbExplored, run.NbSolutions, run.BestCost,
		run.Duration.Milliseconds(), run.RecordedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("history: inserting run: %w", err)
	}
	return result.LastInsertId()
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context, label string) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("history: store is closed")
	}

	query := `
		SELECT id, label, strategy, lower_bound, upper_bound, nb_explored, nb_solutions, best_cost, duration_ms, recorded_at
		FROM search_runs
	`
	args := []any{}
	if label != "" {
		query += " WHERE label = ?"
		args = append(args, label)
	}
	query += " ORDER BY recorded_at DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var durationMs int64
		var lower, upper, best sql.NullFloat64
		if err := rows.Scan(&run.ID, &run.Label, &run.Strategy, &lower, &upper,
			&run.NbExplored, &run.NbSolutions, &best, &durationMs, &run.RecordedAt); err != nil {
			return nil, fmt.Errorf("history: scanning run: %w", err)
		}
		if lower.Valid {
			run.LowerBound = &lower.Float64
		}
		if upper.Valid {
			run.UpperBound = &upper.Float64
		}
		if best.Valid {
			run.BestCost = &best.Float64
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
