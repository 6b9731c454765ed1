package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/bench"
	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/tsp"
)

func sampleRecord(id string, v bench.Variant, n, run int, fitness float64) bench.Record {
	cfg, _ := cuckoo.DefaultTable().Lookup(10)
	return bench.Record{
		RunID:       id,
		Variant:     v,
		N:           n,
		Run:         run,
		Seed:        -42,
		Config:      cfg,
		Tour:        tsp.Tour{2, 0, 1},
		Fitness:     fitness,
		Elapsed:     1500 * time.Microsecond,
		Iterations:  500,
		Evaluations: 75001,
		Refined:     v == bench.VariantHybrid,
	}
}

// exerciseStore runs the Store contract against any backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, _, err := s.GetRun(ctx, "a")
	require.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, s.Init(ctx))
	t.Cleanup(func() { _ = s.Close() })

	recs := []bench.Record{
		sampleRecord("c", bench.VariantPlain, 20, 0, 300),
		sampleRecord("a", bench.VariantPlain, 10, 1, 100),
		sampleRecord("b", bench.VariantHybrid, 10, 0, 90.5),
		sampleRecord("d", bench.VariantPlain, 10, 0, 110),
	}
	for _, r := range recs {
		require.NoError(t, s.SaveRun(ctx, r))
	}

	got, ok, err := s.GetRun(ctx, "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, recs[2], got)

	_, ok, err = s.GetRun(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	all, err := s.ListRuns(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, []string{"b", "d", "a", "c"}, ids(all))

	plain, err := s.ListRuns(ctx, bench.VariantPlain)
	require.NoError(t, err)
	require.Equal(t, []string{"d", "a", "c"}, ids(plain))

	// Upsert replaces the stored record.
	updated := recs[1]
	updated.Fitness = 95
	require.NoError(t, s.SaveRun(ctx, updated))
	got, ok, err = s.GetRun(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 95.0, got.Fitness)
}

func ids(recs []bench.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.RunID
	}
	return out
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db")))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	s := NewSQLiteStore(path)
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.SaveRun(ctx, sampleRecord("x", bench.VariantHybrid, 50, 0, 1234)))
	require.NoError(t, s.Close())

	reopened := NewSQLiteStore(path)
	require.NoError(t, reopened.Init(ctx))
	t.Cleanup(func() { _ = reopened.Close() })
	got, ok, err := reopened.GetRun(ctx, "x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1234.0, got.Fitness)
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	require.Error(t, NewSQLiteStore("").Init(context.Background()))
}

func TestNewStore(t *testing.T) {
	s, err := NewStore("", "")
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)

	s, err = NewStore("sqlite", "x.db")
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)

	_, err = NewStore("badger", "")
	require.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestCodecVersion(t *testing.T) {
	payload, err := EncodeRecord(sampleRecord("v", bench.VariantPlain, 3, 0, 9))
	require.NoError(t, err)
	rec, err := DecodeRecord(payload)
	require.NoError(t, err)
	require.Equal(t, "v", rec.RunID)

	_, err = DecodeRecord([]byte(`{"codec_version":99,"record":{}}`))
	require.ErrorIs(t, err, ErrVersionMismatch)
}
