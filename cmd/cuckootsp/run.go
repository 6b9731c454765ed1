package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckoo/bench"
	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/store"
)

type runOptions struct {
	sizes   []int
	variant string
	seed    int64
	table   string
	runs    int
	workers int
	refiner string

	out     string
	csv     string
	db      string
	metrics string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark over the reference matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&opts.sizes, "sizes", nil, "problem sizes (default: every size in the table)")
	f.StringVar(&opts.variant, "variant", "both", "variant to run: plain, hybrid or both")
	f.Int64Var(&opts.seed, "seed", 1, "base seed for every run")
	f.StringVar(&opts.table, "table", "", "YAML parameter table (default: built-in table)")
	f.IntVar(&opts.runs, "runs", 1, "runs per size and variant")
	f.IntVar(&opts.workers, "workers", 0, "concurrent runs (default: GOMAXPROCS)")
	f.StringVar(&opts.refiner, "refiner", "hill", "hybrid refiner: hill or 2opt")
	f.StringVar(&opts.out, "out", "", "write result lines to this file")
	f.StringVar(&opts.csv, "csv", "", "write records as CSV to this file")
	f.StringVar(&opts.db, "db", "", "persist records to this SQLite database")
	f.StringVar(&opts.metrics, "metrics", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runBenchmark(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()
	logger := slog.Default()

	table := cuckoo.DefaultTable()
	if opts.table != "" {
		t, err := bench.LoadTable(opts.table)
		if err != nil {
			return err
		}
		table = t
	}

	variants, err := bench.ParseVariants(opts.variant)
	if err != nil {
		return err
	}

	refiner, err := refinerFactory(opts.refiner)
	if err != nil {
		return err
	}

	metrics := bench.NewMetrics()
	runner := bench.Runner{
		Table:    table,
		Sizes:    opts.sizes,
		Variants: variants,
		Runs:     opts.runs,
		BaseSeed: opts.seed,
		Workers:  opts.workers,
		Refiner:  refiner,
		Metrics:  metrics,
		Logger:   logger,
	}

	if opts.db != "" {
		st, err := store.NewStore("sqlite", opts.db)
		if err != nil {
			return err
		}
		if err := st.Init(ctx); err != nil {
			return fmt.Errorf("open %s: %w", opts.db, err)
		}
		defer st.Close()
		runner.OnRecord = func(ctx context.Context, rec bench.Record) error {
			return st.SaveRun(ctx, rec)
		}
	}

	records, err := runner.RunAll(ctx)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if err := bench.WriteLines(stdout, records); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if err := bench.WriteSummary(stdout, bench.Summarize(records)); err != nil {
		return err
	}
	for _, best := range bench.BestPerSize(records) {
		logger.Info("best tour", "n", best.N, "variant", best.Variant, "fitness", best.Fitness)
	}

	if opts.out != "" {
		if err := writeFile(opts.out, func(f *os.File) error {
			return bench.WriteLines(f, records)
		}); err != nil {
			return err
		}
		logger.Info("results written", "path", opts.out)
	}
	if opts.csv != "" {
		if err := bench.WriteCSV(opts.csv, records); err != nil {
			return err
		}
		logger.Info("csv written", "path", opts.csv)
	}
	if opts.metrics != "" {
		if err := metrics.WriteTextfile(opts.metrics); err != nil {
			return err
		}
		logger.Info("metrics written", "path", opts.metrics)
	}

	return nil
}

func refinerFactory(name string) (bench.RefinerFactory, error) {
	switch name {
	case "", "hill":
		return bench.HillClimbing, nil
	case "2opt":
		return bench.TwoOpt, nil
	default:
		return nil, fmt.Errorf("unknown refiner %q (want hill or 2opt)", name)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
