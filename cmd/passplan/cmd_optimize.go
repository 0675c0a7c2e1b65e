package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/passplan/internal/planner"
	"github.com/signalsfoundry/passplan/internal/scenario"
	"github.com/signalsfoundry/passplan/model"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize one scenario and print the schedule",
	Long:  "Load a scenario JSON file, run the optimizer once, and print the selected schedule with metrics and recommendations as JSON.",
	RunE:  runOptimize,
}

var (
	optimizeScenarioPath string
	optimizeStrategy     string
)

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVar(&optimizeScenarioPath, "scenario", "", "path to the scenario JSON file (overrides config)")
	optimizeCmd.Flags().StringVar(&optimizeStrategy, "strategy", "", "optimization strategy: heuristic or ml (overrides config)")
}

// scheduleOutput is the JSON the optimize command prints. Selected IDs are
// a sorted list rather than a set so the output diffs cleanly.
type scheduleOutput struct {
	Strategy          string             `json:"strategy"`
	Selected          []int64            `json:"selected_pass_ids"`
	Added             []int64            `json:"added_pass_ids,omitempty"`
	Removed           []int64            `json:"removed_pass_ids,omitempty"`
	Metrics           map[string]float64 `json:"metrics"`
	Recommendations   []string           `json:"recommendations"`
	ComputationTimeMS float64            `json:"computation_time_ms"`
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	path := optimizeScenarioPath
	if path == "" {
		path = cfg.Scenario
	}
	if path == "" {
		return fmt.Errorf("no scenario file: pass --scenario or set scenario in the config")
	}

	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	strategy := optimizeStrategy
	if strategy == "" {
		strategy = cfg.Strategy
	}

	p, err := planner.NewPlanner(strategy, cfg.ConflictBuffer(), logger, nil)
	if err != nil {
		return err
	}

	res, err := p.Optimize(context.Background(), planner.Request{
		Passes:      s.Passes,
		DataQueues:  s.DataQueues,
		Stations:    s.Stations,
		Constraints: mergeConstraints(s.Constraints),
		Baseline:    s.Baseline,
	})
	if err != nil {
		return err
	}

	out := scheduleOutput{
		Strategy:          res.Strategy,
		Selected:          res.SelectedIDs(),
		Metrics:           res.Metrics,
		Recommendations:   res.Recommendations,
		ComputationTimeMS: res.ComputationTimeMS,
	}
	if s.Baseline != nil {
		out.Added, out.Removed = planner.Diff(res.Selected, s.Baseline)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// mergeConstraints fills caps the scenario leaves at zero from the config,
// so a scenario file can tighten but not silently discard configured limits.
func mergeConstraints(c model.Constraints) model.Constraints {
	if c.MaxPassesPerSatellite == 0 {
		c.MaxPassesPerSatellite = cfg.MaxPassesPerSatellite
	}
	if c.MaxTotalPasses == 0 {
		c.MaxTotalPasses = cfg.MaxTotalPasses
	}
	return c
}
