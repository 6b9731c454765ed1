package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/katalvlaran/cuckoo/bench"
)

// MemoryStore keeps records in a map. Records are stored as encoded payloads
// so callers never share slices with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]byte
}

// NewMemoryStore returns an empty, uninitialized store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to an empty, usable state.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]byte)
	return nil
}

// SaveRun stores rec under its RunID, replacing any earlier record.
func (s *MemoryStore) SaveRun(_ context.Context, rec bench.Record) error {
	payload, err := EncodeRecord(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.runs[rec.RunID] = payload
	return nil
}

// GetRun returns the record with the given id; ok is false if none exists.
func (s *MemoryStore) GetRun(_ context.Context, id string) (bench.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return bench.Record{}, false, ErrNotInitialized
	}
	payload, ok := s.runs[id]
	if !ok {
		return bench.Record{}, false, nil
	}
	rec, err := DecodeRecord(payload)
	if err != nil {
		return bench.Record{}, false, err
	}
	return rec, true, nil
}

// ListRuns implements Store.ListRuns.
func (s *MemoryStore) ListRuns(_ context.Context, variant bench.Variant) ([]bench.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	var out []bench.Record
	for _, payload := range s.runs {
		rec, err := DecodeRecord(payload)
		if err != nil {
			return nil, err
		}
		if variant != "" && rec.Variant != variant {
			continue
		}
		out = append(out, rec)
	}
	sortRecords(out)
	return out, nil
}

// Close drops every record; Init must be called before further use.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.runs = nil
	return nil
}

func sortRecords(recs []bench.Record) {
	slices.SortFunc(recs, func(a, b bench.Record) int {
		if c := cmp.Compare(a.N, b.N); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Run, b.Run); c != 0 {
			return c
		}
		return cmp.Compare(a.RunID, b.RunID)
	})
}
