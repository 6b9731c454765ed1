package cuckoo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/cuckoo"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, smallCfg.Validate())

	cases := map[string]func(c *cuckoo.Config){
		"zero nests":        func(c *cuckoo.Config) { c.Nests = 0 },
		"zero iterations":   func(c *cuckoo.Config) { c.MaxIterations = 0 },
		"negative p":        func(c *cuckoo.Config) { c.AbandonProbability = -0.1 },
		"p above one":       func(c *cuckoo.Config) { c.AbandonProbability = 1.01 },
		"NaN p":             func(c *cuckoo.Config) { c.AbandonProbability = math.NaN() },
		"zero scale":        func(c *cuckoo.Config) { c.StepScale = 0 },
		"infinite scale":    func(c *cuckoo.Config) { c.StepScale = math.Inf(1) },
		"zero stability":    func(c *cuckoo.Config) { c.Stability = 0 },
		"NaN stability":     func(c *cuckoo.Config) { c.Stability = math.NaN() },
		"stability gives σ": func(c *cuckoo.Config) { c.Stability = 3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := smallCfg
			mutate(&c)
			require.ErrorIs(t, c.Validate(), cuckoo.ErrInvalidParameter)
		})
	}

	edge := smallCfg
	edge.AbandonProbability = 0
	require.NoError(t, edge.Validate())
	edge.AbandonProbability = 1
	require.NoError(t, edge.Validate())
}

func TestDefaultTable(t *testing.T) {
	tab := cuckoo.DefaultTable()
	require.NoError(t, tab.Validate())
	assert.Equal(t, []int{10, 20, 50, 100, 200, 500}, tab.Sizes())

	cfg, err := tab.Lookup(50)
	require.NoError(t, err)
	assert.Equal(t, cuckoo.Config{Nests: 25, MaxIterations: 500, AbandonProbability: 0.25, StepScale: 2.0, Stability: 1.5}, cfg)

	cfg, err = tab.Lookup(500)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Stability)

	// Fresh copy each call.
	tab[10] = cuckoo.Config{}
	again, err := cuckoo.DefaultTable().Lookup(10)
	require.NoError(t, err)
	assert.Equal(t, 50, again.Nests)
}

func TestTableLookupMissing(t *testing.T) {
	_, err := cuckoo.DefaultTable().Lookup(30)
	require.ErrorIs(t, err, cuckoo.ErrNoConfig)
	require.ErrorIs(t, err, cuckoo.ErrInvalidParameter)

	_, err = cuckoo.Table{}.Lookup(10)
	require.ErrorIs(t, err, cuckoo.ErrNoConfig)
}

func TestTableValidate(t *testing.T) {
	tab := cuckoo.Table{4: smallCfg, 1: smallCfg}
	require.ErrorIs(t, tab.Validate(), cuckoo.ErrInvalidParameter)

	bad := smallCfg
	bad.Nests = -1
	err := cuckoo.Table{4: smallCfg, 8: bad}.Validate()
	require.ErrorIs(t, err, cuckoo.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "n=8")
}

func TestConfigString(t *testing.T) {
	cfg, err := cuckoo.DefaultTable().Lookup(10)
	require.NoError(t, err)
	assert.Equal(t, "nests=50, iter=500, pa=0.6, alpha=1.5, lambda=1.5", cfg.String())
}
