package visibility

import (
	"context"
	"testing"
	"time"

	"github.com/signalsfoundry/passplan/model"
)

// ISS elements; the test horizon sits near this epoch so propagation stays
// well-conditioned.
const (
	issTLE1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issTLE2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func issSatellite() Satellite {
	return Satellite{ID: 25544, Name: "ISS", TLELine1: issTLE1, TLELine2: issTLE2}
}

func midLatitudeStation() model.GroundStation {
	return model.GroundStation{
		ID:              1,
		Name:            "Boulder",
		LatitudeDeg:     40.0,
		LongitudeDeg:    -105.2,
		AltitudeM:       1600,
		MinElevationDeg: 5,
	}
}

func TestPassesRejectsMalformedTLE(t *testing.T) {
	pr := NewPredictor(0, nil)
	sat := Satellite{ID: 1, TLELine1: "garbage", TLELine2: issTLE2}

	start := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)
	if _, err := pr.Passes(sat, midLatitudeStation(), start, start.Add(time.Hour)); err == nil {
		t.Fatal("expected error for malformed TLE")
	}
}

func TestPassesWindowsAreWellFormed(t *testing.T) {
	pr := NewPredictor(0, nil)
	start := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	passes, err := pr.Passes(issSatellite(), midLatitudeStation(), start, end)
	if err != nil {
		t.Fatalf("Passes failed: %v", err)
	}
	if len(passes) == 0 {
		t.Fatal("expected at least one ISS pass over a mid-latitude station in 24h")
	}

	for i, p := range passes {
		if !p.LOS.After(p.AOS) {
			t.Fatalf("pass %d: LOS %v not after AOS %v", i, p.LOS, p.AOS)
		}
		if p.AOS.Before(start) || p.LOS.After(end) {
			t.Fatalf("pass %d: window [%v, %v] outside horizon", i, p.AOS, p.LOS)
		}
		if p.MaxElevationDeg < 5 || p.MaxElevationDeg > 90 {
			t.Fatalf("pass %d: max elevation %v outside [5, 90]", i, p.MaxElevationDeg)
		}
		if p.DurationSeconds <= 0 {
			t.Fatalf("pass %d: non-positive duration", i)
		}
		if i > 0 && p.AOS.Before(passes[i-1].LOS) {
			t.Fatalf("pass %d starts before pass %d ends", i, i-1)
		}
	}
}

func TestPlanAssignsSequentialIDs(t *testing.T) {
	pr := NewPredictor(time.Minute, nil)
	start := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)

	stations := []model.GroundStation{
		midLatitudeStation(),
		{ID: 2, Name: "Kiruna", LatitudeDeg: 67.8, LongitudeDeg: 20.2, MinElevationDeg: 5},
	}
	passes, err := pr.Plan(context.Background(), []Satellite{issSatellite()}, stations, start, start.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(passes) == 0 {
		t.Fatal("expected passes from plan")
	}
	for i, p := range passes {
		if p.ID != int64(i+1) {
			t.Fatalf("pass %d has id %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestPlanRejectsInvertedHorizon(t *testing.T) {
	pr := NewPredictor(0, nil)
	start := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)
	if _, err := pr.Plan(context.Background(), nil, nil, start, start); err == nil {
		t.Fatal("expected error for empty horizon")
	}
}
