package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckoo/matrix"
)

func newMatricesCmd() *cobra.Command {
	var (
		sizes []int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "matrices",
		Short: "Write the reference distance matrices in text form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(sizes) == 0 {
				sizes = matrix.ReferenceSizes
			}
			ms := make([]matrix.Matrix, 0, len(sizes))
			for _, n := range sizes {
				m, err := matrix.Random(n, matrix.ReferenceSeed(n))
				if err != nil {
					return err
				}
				ms = append(ms, m)
			}

			if out == "" {
				return matrix.WriteText(cmd.OutOrStdout(), ms...)
			}
			if err := writeFile(out, func(f *os.File) error {
				return matrix.WriteText(f, ms...)
			}); err != nil {
				return err
			}
			slog.Info("matrices written", "path", out, "count", len(ms))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "matrix sizes (default: reference sizes)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return cmd
}
