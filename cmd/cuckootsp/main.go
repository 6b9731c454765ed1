// Command cuckootsp runs the Cuckoo Search TSP benchmark.
//
//	cuckootsp run --sizes 10,20 --variant both --runs 5 --out results.txt
//	cuckootsp matrices --sizes 10,20 --out matrices.txt
//	cuckootsp compare --in plain.txt --in hybrid.txt
//	cuckootsp table > table.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	noColor  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "cuckootsp",
		Short:        "Cuckoo Search for the Travelling Salesman Problem",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(stderr, opts)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(
		newRunCmd(),
		newMatricesCmd(),
		newCompareCmd(),
		newTableCmd(),
	)

	return root
}

func newLogger(w io.Writer, opts *rootOptions) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    opts.noColor,
	})), nil
}
