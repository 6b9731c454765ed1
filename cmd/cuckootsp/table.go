package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckoo/bench"
	"github.com/katalvlaran/cuckoo/cuckoo"
)

func newTableCmd() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the built-in parameter table as YAML, or validate a table file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := cuckoo.DefaultTable()
			if check != "" {
				t, err := bench.LoadTable(check)
				if err != nil {
					return err
				}
				table = t
			}
			return bench.EncodeTable(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "load and validate this table file, then print it")

	return cmd
}
