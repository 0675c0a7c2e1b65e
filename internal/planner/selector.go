package planner

import (
	"sort"
	"time"

	"github.com/signalsfoundry/passplan/model"
)

// DefaultConflictBuffer is the minimum gap enforced between consecutive
// passes at one station, covering antenna slew and setup time.
const DefaultConflictBuffer = 60 * time.Second

// ScoredPass pairs a candidate pass with its computed score.
type ScoredPass struct {
	Pass  model.Pass
	Score float64
}

// SelectionStats counts why candidates were passed over, for logging.
type SelectionStats struct {
	StationConflicts int
	SatelliteCapHits int
	TotalCapReached  bool
}

// ConflictAwareSelector admits scored passes greedily, best score first,
// subject to per-station time conflicts and the caller's constraints.
// Admission is final: there is no backtracking once a pass is accepted.
type ConflictAwareSelector struct {
	buffer time.Duration
}

// NewConflictAwareSelector builds a selector with the given conflict buffer.
// A non-positive buffer falls back to DefaultConflictBuffer.
func NewConflictAwareSelector(buffer time.Duration) *ConflictAwareSelector {
	if buffer <= 0 {
		buffer = DefaultConflictBuffer
	}
	return &ConflictAwareSelector{buffer: buffer}
}

type interval struct {
	start time.Time
	end   time.Time
}

// Select walks the candidates in descending score order and returns the set
// of admitted pass IDs. The sort is stable, so candidates with equal scores
// keep their input order and identical inputs always produce identical
// selections.
func (s *ConflictAwareSelector) Select(scored []ScoredPass, c model.Constraints) (map[int64]bool, SelectionStats) {
	ordered := append([]ScoredPass(nil), scored...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	selected := make(map[int64]bool)
	stationTimeline := make(map[int64][]interval)
	satelliteCounts := make(map[int64]int)
	var stats SelectionStats

	for _, sp := range ordered {
		if c.MaxTotalPasses > 0 && len(selected) >= c.MaxTotalPasses {
			stats.TotalCapReached = true
			break
		}

		p := sp.Pass

		if c.MaxPassesPerSatellite > 0 && satelliteCounts[p.SatelliteID] >= c.MaxPassesPerSatellite {
			stats.SatelliteCapHits++
			continue
		}

		if s.hasConflict(stationTimeline[p.StationID], p.AOS, p.LOS) {
			stats.StationConflicts++
			continue
		}

		selected[p.ID] = true
		stationTimeline[p.StationID] = append(stationTimeline[p.StationID], interval{start: p.AOS, end: p.LOS})
		satelliteCounts[p.SatelliteID]++
	}

	return selected, stats
}

// hasConflict reports whether [start, end], expanded by the conflict buffer
// on both ends, overlaps any interval already admitted at the station.
func (s *ConflictAwareSelector) hasConflict(admitted []interval, start, end time.Time) bool {
	for _, iv := range admitted {
		if start.Add(-s.buffer).Before(iv.end) && end.Add(s.buffer).After(iv.start) {
			return true
		}
	}
	return false
}
