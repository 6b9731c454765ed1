package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckoo/bench"
)

func newCompareCmd() *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare result lines from one or more result files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(inputs) == 0 {
				return errors.New("at least one --in file is required")
			}

			var lines []bench.Line
			for _, path := range inputs {
				parsed, err := parseFile(path)
				if err != nil {
					return err
				}
				lines = append(lines, parsed...)
			}
			if len(lines) == 0 {
				return fmt.Errorf("no result lines found in %v", inputs)
			}

			return bench.WriteComparison(cmd.OutOrStdout(), bench.Compare(lines))
		},
	}

	cmd.Flags().StringArrayVar(&inputs, "in", nil, "result file (repeatable)")

	return cmd
}

func parseFile(path string) ([]bench.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := bench.ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
