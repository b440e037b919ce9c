package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadgen/internal/lead/synth"
)

func newPoolsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "Print the effective lookup pools as YAML",
		Long: `Print the pools the generator would use after applying --pools.
The output is a valid pools file and can be edited and passed back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pools, err := synth.LoadPools(root.poolsFile)
			if err != nil {
				return fmt.Errorf("load pools: %w", err)
			}
			doc, err := pools.MarshalDocument()
			if err != nil {
				return fmt.Errorf("render pools: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}
