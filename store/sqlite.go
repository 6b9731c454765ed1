package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/cuckoo/bench"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps records in a SQLite database file.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns an unopened store for the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates the runs table if needed.
// Calling Init on an open store is a no-op.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("store: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	// One writer at a time; concurrent batch workers queue on the pool.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun inserts rec, replacing any record with the same RunID.
func (s *SQLiteStore) SaveRun(ctx context.Context, rec bench.Record) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeRecord(rec)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, variant, n, run, fitness, elapsed_ns, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			variant = excluded.variant,
			n = excluded.n,
			run = excluded.run,
			fitness = excluded.fitness,
			elapsed_ns = excluded.elapsed_ns,
			payload = excluded.payload
	`, rec.RunID, string(rec.Variant), rec.N, rec.Run, rec.Fitness, int64(rec.Elapsed), payload)
	return err
}

// GetRun returns the record with the given id; ok is false if none exists.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (bench.Record, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return bench.Record{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bench.Record{}, false, nil
		}
		return bench.Record{}, false, err
	}

	rec, err := DecodeRecord(payload)
	if err != nil {
		return bench.Record{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}
	return rec, true, nil
}

// ListRuns implements Store.ListRuns.
func (s *SQLiteStore) ListRuns(ctx context.Context, variant bench.Variant) ([]bench.Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, payload FROM runs
		WHERE ? = '' OR variant = ?
		ORDER BY n, run, id
	`, string(variant), string(variant))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bench.Record
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		rec, err := DecodeRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("decode run %s: %w", id, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the database. The store may be reopened with Init.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			n INTEGER NOT NULL,
			run INTEGER NOT NULL,
			fitness REAL NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS runs_variant_n ON runs (variant, n);
	`)
	return err
}
