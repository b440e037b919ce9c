package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leadgen/internal/lead/export"
	"leadgen/internal/lead/handler"
	"leadgen/internal/lead/service"
	"leadgen/internal/lead/synth"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type generateFlags struct {
	count    int
	industry string
	role     string
	location string
	format   string
	seed     uint64
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a batch of leads as JSON or CSV",
		Long: `Generate a batch of leads sorted by score, highest first.

Counts above 20 are capped. With --seed the output is reproducible apart
from timestamps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, flags)
		},
	}
	cmd.Flags().IntVarP(&flags.count, "count", "n", service.DefaultCount, "number of leads to generate")
	cmd.Flags().StringVar(&flags.industry, "industry", "", "industry hint (default Technology)")
	cmd.Flags().StringVar(&flags.role, "role", "", "role hint used in insights")
	cmd.Flags().StringVar(&flags.location, "location", "", "accepted for parity with the HTTP API; has no effect")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatJSON, "output format: json or csv")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for reproducible output")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, flags *generateFlags) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if format != formatJSON && format != formatCSV {
		return fmt.Errorf("unknown format %q: use json or csv", flags.format)
	}

	pools, err := synth.LoadPools(root.poolsFile)
	if err != nil {
		return fmt.Errorf("load pools: %w", err)
	}
	s, err := synth.New(pools)
	if err != nil {
		return fmt.Errorf("create synthesizer: %w", err)
	}

	var opts []service.Option
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		opts = append(opts, service.WithSourceFactory(func() synth.Source {
			return synth.NewSeededSource(seed)
		}))
	}
	svc, err := service.New(s, opts...)
	if err != nil {
		return err
	}

	count := flags.count
	leads, err := svc.Generate(cmd.Context(), &service.GenerateCommand{
		Industry: flags.industry,
		Role:     flags.role,
		Location: flags.location,
		Count:    &count,
	})
	if err != nil {
		return fmt.Errorf("generate leads: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == formatCSV {
		return export.WriteCSV(out, leads)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(handler.ToGenerateLeadsResponse(leads))
}
