// Package store keeps a history of stress runs in sqlite.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"atomics/report"
	"atomics/stress"
)

var ErrClosed = errors.New("store: closed")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	scenario    TEXT    NOT NULL,
	model       TEXT    NOT NULL,
	arch        TEXT    NOT NULL,
	ordering    TEXT    NOT NULL,
	workers     INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	mean_ns     REAL    NOT NULL,
	p99_ns      REAL    NOT NULL,
	violations  INTEGER NOT NULL,
	created_at  INTEGER NOT NULL,
	payload     TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created ON runs(created_at);
`

// Store wraps the run history database.
type Store struct {
	db *sql.DB
}

// Row is a summary of one stored run.
type Row struct {
	ID         string
	Scenario   string
	Model      string
	Arch       string
	Order      string
	Workers    int
	Iterations int
	MeanNs     float64
	P99Ns      float64
	Violations int64
	CreatedAt  int64
}

// Open creates or opens the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, errors.Join(fmt.Errorf("store: schema: %w", err), db.Close())
	}
	return &Store{db: db}, nil
}

// Save records res and returns its run id.  Saving the same run twice
// replaces the earlier row.
func (s *Store) Save(ctx context.Context, res stress.Result) (string, error) {
	if s.db == nil {
		return "", ErrClosed
	}
	id, err := report.RunID(res)
	if err != nil {
		return "", err
	}
	var payload bytes.Buffer
	if err := report.Encode(&payload, []stress.Result{res}); err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs
		 (id, scenario, model, arch, ordering, workers, iterations, mean_ns, p99_ns, violations, created_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Config.Scenario, res.Model, res.Arch, res.Config.Order.String(),
		res.Config.Workers, res.Config.Iterations, res.Stats.MeanNs, res.Stats.P99Ns,
		res.Violations, res.Started.UnixNano(), payload.String())
	if err != nil {
		return "", fmt.Errorf("store: save %s: %w", id, err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Row, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario, model, arch, ordering, workers, iterations, mean_ns, p99_ns, violations, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: recent: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Model, &r.Arch, &r.Order, &r.Workers,
			&r.Iterations, &r.MeanNs, &r.P99Ns, &r.Violations, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Load returns the full result stored under id.
func (s *Store) Load(ctx context.Context, id string) (stress.Result, error) {
	if s.db == nil {
		return stress.Result{}, ErrClosed
	}
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return stress.Result{}, fmt.Errorf("store: load %s: %w", id, err)
	}
	results, err := report.Decode(bytes.NewBufferString(payload))
	if err != nil {
		return stress.Result{}, err
	}
	return results[0], nil
}

// Close releases the database.  Later calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}
