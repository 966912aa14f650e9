// SPDX-License-Identifier: MIT

// Command nbkit evaluates Gaussian densities, standardizes data, renders
// styled density plots and runs ABC-SMC inference from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nbkit/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved in PersistentPreRunE
	cfg    = config.Default()
	logger = zap.NewNop()
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nbkit",
		Short: "Numeric notebook toolkit: densities, standardization, plots and ABC-SMC",
		Long: `nbkit bundles the numeric helpers of a research notebook collection:

  density      evaluate a multivariate normal density on a grid (CSV)
  standardize  z-score a numeric CSV matrix
  plot         render a 2-D density heat map with the configured style
  smc          run ABC-SMC inference on the binomial or regression model

Settings come from an optional YAML file (--config); flags override it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			l, err := loaded.Log.Logger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cfg, logger = loaded, l
			logger.Debug("configuration loaded", zap.String("path", configPath))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	root.AddCommand(newDensityCmd(), newStandardizeCmd(), newPlotCmd(), newSMCCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
