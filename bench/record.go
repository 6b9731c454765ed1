package bench

import (
	"time"

	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/tsp"
)

// Record is the outcome of one search run.
type Record struct {
	RunID       string        `json:"run_id"`
	Variant     Variant       `json:"variant"`
	N           int           `json:"n"`
	Run         int           `json:"run"`
	Seed        int64         `json:"seed"`
	Config      cuckoo.Config `json:"config"`
	Tour        tsp.Tour      `json:"tour"`
	Fitness     float64       `json:"fitness"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Iterations  int           `json:"iterations"`
	Evaluations int           `json:"evaluations"`
	Refined     bool          `json:"refined"`
}
