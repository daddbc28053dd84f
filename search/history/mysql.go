package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB-backed Store, suited to sharing run
// history across multiple processes or machines.
//
// The dsn follows the go-sql-driver/mysql format, e.g.
// "user:password@tcp(localhost:3306)/searchtoy?parseTime=true".
type MySQLStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewMySQLStore opens a MySQL connection pool and ensures the run-summary
// table exists.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: opening mysql connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: pinging mysql: %w", err)
	}

	store := &MySQLStore{db: db}
	if err := store.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *MySQLStore) createTable(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS search_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			label VARCHAR(255) NOT NULL,
			strategy VARCHAR(64) NOT NULL,
			lower_bound DOUBLE NULL,
			upper_bound DOUBLE NULL,
			nb_explored INT NOT NULL,
			nb_solutions INT NOT NULL,
			best_cost DOUBLE NULL,
			duration_ms BIGINT NOT NULL,
			recorded_at DATETIME NOT NULL,
			INDEX idx_search_runs_label (label)
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("history: creating search_runs table: %w", err)
	}
	return nil
}

// Record implements Store.
func (s *MySQLStore) Record(ctx context.Context, run Run) (int64, error) {
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
func (s *MySQLStore) List(ctx context.Context, label string) ([]Run, error) {
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
func (s *MySQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
