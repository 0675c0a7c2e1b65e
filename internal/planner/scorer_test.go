package planner

import (
	"math"
	"testing"
	"time"

	"github.com/signalsfoundry/passplan/model"
)

func basePass() model.Pass {
	aos := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return model.Pass{
		ID:              1,
		SatelliteID:     101,
		StationID:       1,
		AOS:             aos,
		LOS:             aos.Add(8 * time.Minute),
		MaxElevationDeg: 45,
		DurationSeconds: 480,
		Priority:        model.PriorityMedium,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreUnknownQueueUsesFlatDemand(t *testing.T) {
	var scorer PassScorer
	p := basePass()

	// 50 (unknown demand) + 45/90*100 + min(50, 8*5) - 1*10 + 0
	got := scorer.Score(p, nil, 1.0)
	want := 50.0 + 50.0 + 40.0 - 10.0
	if !almostEqual(got, want) {
		t.Fatalf("expected score %v, got %v", want, got)
	}
}

func TestScoreDemandTermIsCapped(t *testing.T) {
	var scorer PassScorer
	p := basePass()
	queue := &model.DataQueue{SatelliteID: 101, CriticalMB: 500}

	withHugeBacklog := scorer.Score(p, queue, 1.0)
	withModerateBacklog := scorer.Score(p, &model.DataQueue{SatelliteID: 101, CriticalMB: 2}, 1.0)

	// 500 MB critical would be 50000 uncapped; the cap holds it at 200.
	if !almostEqual(withHugeBacklog, withModerateBacklog) {
		t.Fatalf("expected capped demand scores to match: %v vs %v", withHugeBacklog, withModerateBacklog)
	}
}

func TestScoreDurationTermIsCapped(t *testing.T) {
	var scorer PassScorer

	tenMinutes := basePass()
	tenMinutes.DurationSeconds = 600
	twentyMinutes := basePass()
	twentyMinutes.DurationSeconds = 1200

	if got, want := scorer.Score(twentyMinutes, nil, 1.0), scorer.Score(tenMinutes, nil, 1.0); !almostEqual(got, want) {
		t.Fatalf("duration beyond the cap should not change the score: %v vs %v", got, want)
	}
}

func TestScoreCostPenalty(t *testing.T) {
	var scorer PassScorer
	p := basePass()

	cheap := scorer.Score(p, nil, 0.5)
	expensive := scorer.Score(p, nil, 3.0)
	if !almostEqual(cheap-expensive, 25) {
		t.Fatalf("expected 25-point spread between costs 0.5 and 3.0, got %v", cheap-expensive)
	}
}

func TestScoreElevationMonotonic(t *testing.T) {
	var scorer PassScorer
	prev := math.Inf(-1)
	for _, elev := range []float64{0, 15, 30, 45, 60, 75, 90} {
		p := basePass()
		p.MaxElevationDeg = elev
		got := scorer.Score(p, nil, 1.0)
		if got <= prev {
			t.Fatalf("score not strictly increasing at elevation %v: %v <= %v", elev, got, prev)
		}
		prev = got
	}
}

func TestScoreDurationMonotonicBelowCap(t *testing.T) {
	var scorer PassScorer
	prev := math.Inf(-1)
	for _, seconds := range []float64{60, 180, 300, 420, 540, 600} {
		p := basePass()
		p.DurationSeconds = seconds
		got := scorer.Score(p, nil, 1.0)
		if got <= prev {
			t.Fatalf("score not strictly increasing at duration %vs: %v <= %v", seconds, got, prev)
		}
		prev = got
	}
}

func TestScorePriorityTiers(t *testing.T) {
	var scorer PassScorer

	tiers := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical}
	prev := math.Inf(-1)
	for _, tier := range tiers {
		p := basePass()
		p.Priority = tier
		got := scorer.Score(p, nil, 1.0)
		if got <= prev {
			t.Fatalf("raising priority to %s did not raise score: %v <= %v", tier, got, prev)
		}
		prev = got
	}
}

func TestScoreNumericPriorityOverridesTier(t *testing.T) {
	var scorer PassScorer

	p := basePass()
	p.Priority = model.PriorityCritical
	p.PriorityLevel = 5

	enumOnly := basePass()
	enumOnly.Priority = model.PriorityCritical

	// Level 5 maps to +100, same as critical, so the two agree here.
	if got, want := scorer.Score(p, nil, 1.0), scorer.Score(enumOnly, nil, 1.0); !almostEqual(got, want) {
		t.Fatalf("expected numeric level 5 to equal critical boost: %v vs %v", got, want)
	}

	p.PriorityLevel = 1
	if got := scorer.Score(p, nil, 1.0); almostEqual(got, scorer.Score(enumOnly, nil, 1.0)) {
		t.Fatal("numeric level 1 should not score like critical tier")
	}
}

func TestScoreUnsetPriorityDefaultsToMedium(t *testing.T) {
	var scorer PassScorer

	unset := basePass()
	unset.Priority = ""
	medium := basePass()
	medium.Priority = model.PriorityMedium

	if got, want := scorer.Score(unset, nil, 1.0), scorer.Score(medium, nil, 1.0); !almostEqual(got, want) {
		t.Fatalf("unset priority should score as medium: %v vs %v", got, want)
	}
}

func TestScoreZeroDurationFallsBackToWindow(t *testing.T) {
	var scorer PassScorer

	p := basePass()
	p.DurationSeconds = 0 // window is 8 minutes

	explicit := basePass()
	explicit.DurationSeconds = 480

	if got, want := scorer.Score(p, nil, 1.0), scorer.Score(explicit, nil, 1.0); !almostEqual(got, want) {
		t.Fatalf("expected window fallback to match explicit duration: %v vs %v", got, want)
	}
}
