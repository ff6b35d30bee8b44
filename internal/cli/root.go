// Package cli implements the schedsim command line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"schedsim/config"
	"schedsim/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	cfg    *config.Config
)

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling simulator",
		Long: `schedsim replays a workload of processes under FCFS, LCFS, preemptive
LCFS, round robin and SJF scheduling and compares their mean turnaround
times. It runs as a one-shot command over workload files or as an HTTP
service.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagLogFormat != "" {
				cfg.LogFormat = flagLogFormat
			}
			logger = logging.New(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.yaml (default: ./config.yaml when present)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
	)

	return root
}
