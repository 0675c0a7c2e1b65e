package planner

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/signalsfoundry/passplan/model"
)

// Advisory thresholds. A satellite with more critical backlog than
// criticalBacklogMB and fewer than minPassesForBacklog scheduled contacts is
// flagged as under-served.
const (
	criticalBacklogMB   = 100.0
	minPassesForBacklog = 3
)

// RecommendationEngine derives human-readable advisories from unselected
// demand and idle capacity. It is a best-effort hint layer: advisories never
// affect the selection itself.
type RecommendationEngine struct{}

// Recommend evaluates its rules in a fixed order so output is stable:
// under-served satellites first (ascending satellite ID), then idle stations
// (ascending station ID), then a fallback message when nothing was flagged.
func (RecommendationEngine) Recommend(passes []model.Pass, selected map[int64]bool, queues map[int64]model.DataQueue, stations map[int64]model.GroundStation) []string {
	recommendations := []string{}

	selectedPerSatellite := make(map[int64]int)
	selectedPerStation := make(map[int64]int)
	for _, p := range passes {
		if !selected[p.ID] {
			continue
		}
		selectedPerSatellite[p.SatelliteID]++
		selectedPerStation[p.StationID]++
	}

	for _, satID := range sortedKeys(queues) {
		queue := queues[satID]
		if queue.CriticalMB <= criticalBacklogMB {
			continue
		}
		if count := selectedPerSatellite[satID]; count < minPassesForBacklog {
			recommendations = append(recommendations, fmt.Sprintf(
				"Satellite %d has %.0fMB critical data but only %d scheduled passes. Consider adding ground station capacity.",
				satID, queue.CriticalMB, count,
			))
		}
	}

	for _, stationID := range sortedKeys(stations) {
		if selectedPerStation[stationID] > 0 {
			continue
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Ground station %s has no scheduled passes. Consider using it to reduce load on other stations.",
			stationLabel(stations[stationID]),
		))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Schedule is well-balanced. No immediate optimizations suggested.")
	}

	return recommendations
}

func stationLabel(station model.GroundStation) string {
	if station.Name != "" {
		return station.Name
	}
	return strconv.FormatInt(station.ID, 10)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
