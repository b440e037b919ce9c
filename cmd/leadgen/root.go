package main

import (
	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	poolsFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "leadgen",
		Short: "Generate synthetic sales leads",
		Long: `leadgen fabricates plausible sales leads for demos and UI testing.

The same generator backs the HTTP server. Pools of names, companies and
insights can be replaced with a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.poolsFile, "pools", "", "YAML file overriding the built-in lookup pools")

	cmd.AddCommand(newGenerateCmd(flags), newPoolsCmd(flags))
	return cmd
}
