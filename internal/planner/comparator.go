package planner

import (
	"sort"

	"github.com/signalsfoundry/passplan/model"
)

// ScheduleComparator computes aggregate metrics for a selected schedule and
// deltas against an optional baseline.
type ScheduleComparator struct{}

// Compare builds the metrics map for the passes whose IDs are in selected.
// When baseline is non-nil it also reports how much the schedule changed.
// The improvement ratio against an empty baseline is defined as 1.0.
func (ScheduleComparator) Compare(passes []model.Pass, selected, baseline map[int64]bool) map[string]float64 {
	var (
		contactMinutes float64
		elevationSum   float64
		count          int
	)
	satellites := make(map[int64]bool)

	for _, p := range passes {
		if !selected[p.ID] {
			continue
		}
		count++
		contactMinutes += p.EffectiveDurationSeconds() / 60
		elevationSum += p.MaxElevationDeg
		satellites[p.SatelliteID] = true
	}

	averageElevation := 0.0
	if count > 0 {
		averageElevation = elevationSum / float64(count)
	}

	metrics := map[string]float64{
		model.MetricTotalPasses:         float64(len(selected)),
		model.MetricTotalContactMinutes: contactMinutes,
		model.MetricSatellitesCovered:   float64(len(satellites)),
		model.MetricAverageElevation:    averageElevation,
	}

	if baseline != nil {
		changed := 0
		for id := range selected {
			if !baseline[id] {
				changed++
			}
		}
		for id := range baseline {
			if !selected[id] {
				changed++
			}
		}
		metrics[model.MetricPassesChanged] = float64(changed)

		ratio := 1.0
		if len(baseline) > 0 {
			ratio = float64(len(selected)) / float64(len(baseline))
		}
		metrics[model.MetricImprovementRatio] = ratio
	}

	return metrics
}

// Diff returns the pass IDs added to and removed from the baseline, each in
// ascending order. The lists are derived for audit output and never stored.
func Diff(selected, baseline map[int64]bool) (added, removed []int64) {
	for id := range selected {
		if !baseline[id] {
			added = append(added, id)
		}
	}
	for id := range baseline {
		if !selected[id] {
			removed = append(removed, id)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return added, removed
}
