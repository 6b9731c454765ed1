package bench

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var csvHeader = []string{
	"run_id", "variant", "n", "run", "seed",
	"nests", "iterations", "abandon_probability", "step_scale", "stability",
	"fitness", "elapsed_seconds", "evaluations", "refined", "tour",
}

// WriteCSV writes records to path, creating parent directories.
func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodeCSV writes a header and one row per record to w. The tour is a
// space-separated city list.
func EncodeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.RunID,
			string(r.Variant),
			itoa(r.N),
			itoa(r.Run),
			strconv.FormatInt(r.Seed, 10),
			itoa(r.Config.Nests),
			itoa(r.Config.MaxIterations),
			ftoa(r.Config.AbandonProbability),
			ftoa(r.Config.StepScale),
			ftoa(r.Config.Stability),
			ftoa(r.Fitness),
			ftoa(r.Elapsed.Seconds()),
			itoa(r.Evaluations),
			strconv.FormatBool(r.Refined),
			joinTour(r.Tour),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func joinTour(t []int) string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = itoa(c)
	}

	return strings.Join(parts, " ")
}
