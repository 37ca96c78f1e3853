package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/loader"
	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		file        string
		algorithms  []string
		timeQuantum int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate scheduling policies over a CSV process file",
		Long: `Reads pid,arrival_time,burst_time rows (header optional) and prints
one result per requested algorithm.`,
		Example: "  schedsim simulate --file processes.csv --algorithms RR,SJF --time-quantum 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetSchedulerConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			processes, err := loader.LoadFile(file)
			if err != nil {
				return err
			}
			logger.Debug("loaded processes", "file", file, "count", len(processes))

			opts := schedulers.Options{
				TimeQuantum: cfg.RoundRobinTimeQuantum,
				SkipIdle:    cfg.SkipIdle,
				Logger:      logger,
			}
			if cmd.Flags().Changed("time-quantum") {
				if timeQuantum <= 0 {
					return schedulers.ErrInvalidTimeQuantum
				}
				opts.TimeQuantum = timeQuantum
			}

			results, err := schedulers.RunAll(algorithms, processes, opts)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), format, results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file of processes")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithms", "a", schedulers.Algorithms(), "Algorithms to run (ADRR, RR, SJF)")
	cmd.Flags().IntVarP(&timeQuantum, "time-quantum", "q", 0, "Round robin time quantum; overrides config")
	cmd.Flags().StringVarP(&format, "format", "o", report.FormatTable, "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
