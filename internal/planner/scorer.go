package planner

import "github.com/signalsfoundry/passplan/model"

// Scoring weights. Each factor is bounded so that no single input can
// dominate the total; the caps below are part of the scoring contract and
// covered by tests.
const (
	demandScoreCap     = 200.0
	unknownDemandScore = 50.0

	demandWeightCritical = 100.0
	demandWeightHigh     = 50.0
	demandWeightMedium   = 20.0
	demandWeightLow      = 5.0

	elevationScoreMax = 100.0

	durationScoreCap       = 50.0
	durationScorePerMinute = 5.0

	costPenaltyPerMinute = 10.0

	priorityLevelWeight = 20.0
)

var priorityBoost = map[model.Priority]float64{
	model.PriorityCritical: 100,
	model.PriorityHigh:     50,
	model.PriorityMedium:   0,
	model.PriorityLow:      -20,
}

// PassScorer computes a scalar desirability score for a candidate pass.
// Scoring is a pure function of the pass, the satellite's backlog, and the
// station cost; ties between passes are allowed.
type PassScorer struct{}

// Score combines backlog demand, pass quality, contact duration, station
// cost, and priority into one additive score. A nil queue means the
// satellite's backlog is unknown and is treated as medium demand.
func (PassScorer) Score(p model.Pass, queue *model.DataQueue, costPerMinute float64) float64 {
	score := demandScore(queue)

	// Pass quality: peak elevation relative to zenith.
	score += p.MaxElevationDeg / 90 * elevationScoreMax

	// Longer contacts move more data, capped at ten minutes' worth.
	minutes := p.EffectiveDurationSeconds() / 60
	score += min(durationScoreCap, minutes*durationScorePerMinute)

	score -= costPerMinute * costPenaltyPerMinute

	score += priorityScore(p)

	return score
}

func demandScore(queue *model.DataQueue) float64 {
	if queue == nil {
		return unknownDemandScore
	}
	volume := queue.CriticalMB*demandWeightCritical +
		queue.HighMB*demandWeightHigh +
		queue.MediumMB*demandWeightMedium +
		queue.LowMB*demandWeightLow
	return min(demandScoreCap, volume)
}

// priorityScore applies exactly one of the two priority representations:
// the numeric level when a producer set one, otherwise the tiered enum.
func priorityScore(p model.Pass) float64 {
	if p.PriorityLevel != 0 {
		return float64(p.PriorityLevel) * priorityLevelWeight
	}
	return priorityBoost[model.ParsePriority(string(p.Priority))]
}
