package model

import "sort"

// Metric keys produced by the schedule comparator.
const (
	MetricTotalPasses         = "total_passes"
	MetricTotalContactMinutes = "total_contact_minutes"
	MetricSatellitesCovered   = "satellites_covered"
	MetricAverageElevation    = "average_elevation"
	MetricPassesChanged       = "passes_changed"
	MetricImprovementRatio    = "improvement_ratio"
)

// Result is the outcome of one optimization call. It is freshly allocated
// per invocation and never retained by the engine.
type Result struct {
	// Selected is the set of admitted pass IDs.
	Selected map[int64]bool

	// Metrics holds the aggregate schedule metrics keyed by the Metric*
	// constants above.
	Metrics map[string]float64

	// Recommendations are human-readable advisories, best effort only.
	Recommendations []string

	// Strategy names the algorithm that produced this result.
	Strategy string

	// ComputationTimeMS is the wall-clock time of the optimization call,
	// measured by the planner around the strategy invocation.
	ComputationTimeMS float64
}

// SelectedIDs returns the selected pass IDs in ascending order.
func (r *Result) SelectedIDs() []int64 {
	ids := make([]int64, 0, len(r.Selected))
	for id := range r.Selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
