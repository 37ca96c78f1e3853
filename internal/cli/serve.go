package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/api"
	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/predictor"
	"cpu-scheduler-sim/internal/store"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetSchedulerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			logger := newLogger(cfg)

			model, err := predictor.NewLinearModel(cfg.PredictorIntercept, cfg.PredictorCoefficients)
			if err != nil {
				return fmt.Errorf("predictor: %w", err)
			}

			var st store.Store
			if cfg.StorePath != "" {
				sqlStore, err := store.NewSQLiteStore(cfg.StorePath, logger)
				if err != nil {
					return err
				}
				defer sqlStore.Close()
				if err := sqlStore.Migrate(cmd.Context()); err != nil {
					return err
				}
				st = sqlStore
			}

			handler := api.NewSchedulerHandlerImpl(cfg, model, st, logger)
			app := api.NewRouter(handler, cfg, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				_ = app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr, "history", cfg.StorePath != "")
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port; overrides config")
	return cmd
}
