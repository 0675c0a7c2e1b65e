package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/passplan/internal/logging"
	"github.com/signalsfoundry/passplan/internal/observability"
	"github.com/signalsfoundry/passplan/internal/planner"
	"github.com/signalsfoundry/passplan/internal/scenario"
	"github.com/signalsfoundry/passplan/internal/store"
	"github.com/signalsfoundry/passplan/model"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Re-plan periodically and serve metrics",
	Long:  "Reload the scenario file on an interval, re-run the optimizer against the previously selected schedule as baseline, and expose Prometheus metrics until interrupted.",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if cfg.Scenario == "" {
		return fmt.Errorf("run mode needs a scenario file: set scenario in the config")
	}

	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), logger)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)

	collector, err := observability.NewPlannerCollector(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	p, err := planner.NewPlanner(cfg.Strategy, cfg.ConflictBuffer(), logger, collector)
	if err != nil {
		return err
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.Info(ctx, "metrics server listening", logging.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error(ctx, "metrics server failed", logging.Err(err))
			}
		}()
	}

	results := store.NewStore()
	var baseline map[int64]bool

	replan := func() {
		rec, err := replanOnce(ctx, p, results, baseline)
		if err != nil {
			logger.Error(ctx, "re-plan failed", logging.Err(err))
			return
		}
		baseline = rec.Result.Selected
		logger.Info(ctx, "schedule stored",
			logging.String("record_id", rec.ID),
			logging.Int("records", results.Len()),
		)
	}

	replan()

	ticker := time.NewTicker(cfg.Interval.AsDuration())
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info(ctx, "planner running",
		logging.String("strategy", p.Strategy()),
		logging.Duration("interval", cfg.Interval.AsDuration()),
	)

	for {
		select {
		case <-ticker.C:
			replan()
		case <-quit:
			logger.Info(ctx, "shutting down")
			if metricsServer != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := metricsServer.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "metrics server shutdown failed", logging.Err(err))
				}
			}
			return nil
		}
	}
}

// replanOnce reloads the scenario, runs one optimization against the prior
// selection, and stores the result as a pending record.
func replanOnce(ctx context.Context, p *planner.Planner, results *store.Store, baseline map[int64]bool) (store.Record, error) {
	s, err := scenario.LoadFile(cfg.Scenario)
	if err != nil {
		return store.Record{}, err
	}

	if baseline == nil {
		baseline = s.Baseline
	}

	res, err := p.Optimize(ctx, planner.Request{
		Passes:      s.Passes,
		DataQueues:  s.DataQueues,
		Stations:    s.Stations,
		Constraints: mergeConstraints(s.Constraints),
		Baseline:    baseline,
	})
	if err != nil {
		return store.Record{}, err
	}

	if baseline != nil {
		added, removed := planner.Diff(res.Selected, baseline)
		logger.Info(ctx, "schedule delta",
			logging.Int("added", len(added)),
			logging.Int("removed", len(removed)),
			logging.Float("contact_minutes", res.Metrics[model.MetricTotalContactMinutes]),
		)
	}

	return results.Put(res), nil
}
