package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "schedsim",
		Short:        "CPU scheduling simulator (ADRR, RR, SJF)",
		Long:         "schedsim simulates CPU scheduling policies over a process set and reports waiting time, turnaround time and Gantt charts.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagConfig != "" {
				config.SetConfigFile(flagConfig)
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json); overrides config")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
	)

	return root
}

// newLogger resolves flags over config values.
func newLogger(cfg *config.SchedulerConfig) *slog.Logger {
	level, format := cfg.LogLevel, cfg.LogFormat
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if flagDebug {
		level = "debug"
	}
	if flagLogFormat != "" {
		format = flagLogFormat
	}
	return logging.NewLogger(logging.ParseLevel(level), format)
}
