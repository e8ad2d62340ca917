package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qecc"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qecc",
		Short: "Simulate quantum error-correcting block codes over classical bits",
		Long: `qecc encodes a logical basis state into a redundant block, flips bits,
measures the syndrome, applies the code's correction and verifies the result.

Examples:
  qecc run --code shor --basis 1 --errors 0
  qecc sweep --codes shor,steane --trials 5000 --error-rate 0.02
  qecc codes`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(newRunCmd(), newSweepCmd(), newCodesCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		code      string
		basis     string
		positions []int
		chart     bool
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encode, corrupt, diagnose, repair and verify a single block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := qecc.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			b, err := qecc.ParseBasis(basis)
			if err != nil {
				return err
			}

			result, err := qecc.Run(code, b, positions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				fmt.Fprint(out, spew.Sdump(result))
			}

			if cfg.Format == "text" {
				fmt.Fprint(out, result.Report())
			} else if err := qecc.EncodeSummary(out, result.Summary(), cfg.Format); err != nil {
				return err
			}

			if chart {
				fmt.Fprintln(out, qecc.RenderChart(result))
			}

			if err := result.Err(); err != nil {
				errnie.Info("%v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", qecc.ShorName, "registered code name")
	cmd.Flags().StringVar(&basis, "basis", "0", "basis state to encode: 0 or 1")
	cmd.Flags().IntSliceVar(&positions, "errors", nil, "bit positions to flip")
	cmd.Flags().String("format", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&chart, "chart", false, "draw a bar chart of the blocks")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the raw result")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		codes []string
		basis string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate logical error rates under random independent bit flips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := qecc.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			b, err := qecc.ParseBasis(basis)
			if err != nil {
				return err
			}

			if len(codes) == 0 {
				codes = qecc.DefaultRegistry().Names()
			}

			configs := make([]qecc.SweepConfig, 0, len(codes))
			for _, name := range codes {
				configs = append(configs, qecc.SweepConfig{
					Code:      strings.TrimSpace(name),
					Basis:     b,
					Trials:    cfg.Trials,
					ErrorRate: cfg.ErrorRate,
					Seed:      cfg.Seed,
				})
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pool := qecc.NewPool(ctx, qecc.NewPipeline(), cfg)
			defer pool.Close()

			reports, err := qecc.SweepAll(ctx, pool, configs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Format != "text" {
				return qecc.EncodeSummary(out, reports, cfg.Format)
			}

			for _, report := range reports {
				fmt.Fprintln(out, report)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&codes, "codes", nil, "codes to sweep (default: all registered)")
	cmd.Flags().StringVar(&basis, "basis", "0", "basis state to encode: 0 or 1")
	cmd.Flags().Int("trials", 1000, "trials per code")
	cmd.Flags().Float64("error-rate", 0.05, "independent flip probability per bit")
	cmd.Flags().Uint64("seed", 1, "random seed")
	cmd.Flags().Int("workers", 4, "concurrent workers")
	cmd.Flags().Duration("scheduling-timeout", 0, "how long a trial may wait for a worker")
	cmd.Flags().String("format", "text", "output format: text, json or yaml")

	return cmd
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the registered codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := qecc.DefaultRegistry()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-12s %6s %9s  %s\n", "NAME", "BLOCK", "SYNDROME", "CORRECTABLE")
			for _, name := range registry.Names() {
				code, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %6d %9d  %v\n",
					name, code.BlockLen(), code.SyndromeLen(), code.CorrectablePositions())
			}
			return nil
		},
	}
}
