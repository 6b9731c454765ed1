// Package store persists benchmark run records.
//
// Two backends implement Store: MemoryStore for tests and one-off runs, and
// SQLiteStore (pure-Go modernc.org/sqlite driver) for result databases that
// survive the process. Records are kept as versioned JSON payloads next to a
// few indexed columns used for listing.
package store

import (
	"context"
	"errors"

	"github.com/katalvlaran/cuckoo/bench"
)

var (
	// ErrNotInitialized is returned by operations on a store before Init.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrUnsupportedBackend is returned by NewStore for an unknown kind.
	ErrUnsupportedBackend = errors.New("store: unsupported backend")
)

// Store defines persistence operations for run records.
type Store interface {
	// Init prepares the backend; every other method fails with
	// ErrNotInitialized before it.
	Init(ctx context.Context) error
	// SaveRun inserts or replaces the record keyed by rec.RunID.
	SaveRun(ctx context.Context, rec bench.Record) error
	// GetRun returns the record with the given id and whether it exists.
	GetRun(ctx context.Context, id string) (bench.Record, bool, error)
	// ListRuns returns records of the given variant ("" for all), ordered by
	// problem size, then run index, then id.
	ListRuns(ctx context.Context, variant bench.Variant) ([]bench.Record, error)
	Close() error
}
