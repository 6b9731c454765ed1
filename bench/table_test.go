package bench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/bench"
	"github.com/katalvlaran/cuckoo/cuckoo"
)

const tableYAML = `
sizes:
  12:
    nests: 10
    max_iterations: 40
    abandon_probability: 0
    step_scale: 1.5
    stability: 1.5
  30:
    nests: 20
    max_iterations: 100
    abandon_probability: 0.25
    step_scale: 2
    stability: 1
`

func TestParseTable(t *testing.T) {
	tab, err := bench.ParseTable(strings.NewReader(tableYAML))
	require.NoError(t, err)
	assert.Equal(t, []int{12, 30}, tab.Sizes())
	assert.Equal(t, cuckoo.Config{Nests: 10, MaxIterations: 40, AbandonProbability: 0, StepScale: 1.5, Stability: 1.5}, tab[12])
}

func TestParseTable_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":         "sizes: [",
		"empty":            "sizes: {}",
		"unknown field":    "sizes:\n  5: {nests: 1, max_iterations: 1, abandon_probability: 0, step_scale: 1, stability: 1, extra: 2}",
		"missing p":        "sizes:\n  5: {nests: 1, max_iterations: 1, step_scale: 1, stability: 1}",
		"p above one":      "sizes:\n  5: {nests: 1, max_iterations: 1, abandon_probability: 2, step_scale: 1, stability: 1}",
		"zero nests":       "sizes:\n  5: {nests: 0, max_iterations: 1, abandon_probability: 0, step_scale: 1, stability: 1}",
		"size below two":   "sizes:\n  1: {nests: 1, max_iterations: 1, abandon_probability: 0, step_scale: 1, stability: 1}",
		"negative scale":   "sizes:\n  5: {nests: 1, max_iterations: 1, abandon_probability: 0, step_scale: -1, stability: 1}",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.ParseTable(strings.NewReader(in))
			require.ErrorIs(t, err, bench.ErrTableFile)
		})
	}

	// Passes the schema but not the search's own rules (σ undefined for β=3).
	_, err := bench.ParseTable(strings.NewReader(
		"sizes:\n  5: {nests: 1, max_iterations: 1, abandon_probability: 0, step_scale: 1, stability: 3}"))
	require.ErrorIs(t, err, cuckoo.ErrInvalidParameter)
}

func TestLoadTable_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.EncodeTable(&buf, cuckoo.DefaultTable()))

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	tab, err := bench.LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, cuckoo.DefaultTable(), tab)

	_, err = bench.LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
