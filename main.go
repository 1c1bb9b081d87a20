// ════════════════════════════════════════════════════════════════════════════════════════════════
// numbench - Micro-benchmark Runner
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: CLI entry point
//
// Description:
//   Declares the suite with the configured corpus geometry and hands each selected case to the
//   testing package driver. The harness never times anything itself.
//
// Commands:
//   - list:        declared cases and their shapes
//   - run:         one JSON line per measured case
//   - fingerprint: SHA3-256 of every corpus, for cross-process determinism checks
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"numbench/config"
	"numbench/debug"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		debug.DropError("numbench", err)
		os.Exit(1)
	}
}

// newRootCmd wires the subcommands; out receives the JSON lines.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		cfgPath string
		include []string
	)

	load := func() (*config.Config, error) {
		cfg := config.Default()
		if cfgPath != "" {
			var err error
			if cfg, err = config.Load(cfgPath); err != nil {
				return nil, err
			}
		}
		if len(include) > 0 {
			cfg.Include = include
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
		}
		return cfg, nil
	}

	root := &cobra.Command{
		Use:           "numbench",
		Short:         "Steady-state micro-benchmarks for small numeric value types",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringSliceVarP(&include, "include", "i", nil, "case name regexps (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List declared cases",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return listCases(out, cfg)
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Measure selected cases",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return runCases(out, cfg)
			},
		},
		&cobra.Command{
			Use:   "fingerprint",
			Short: "Print corpus fingerprints of selected cases",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return fingerprintCases(out, cfg)
			},
		},
	)
	return root
}
