package scenario

import (
	"strings"
	"testing"
	"time"

	"github.com/signalsfoundry/passplan/model"
)

const sampleScenario = `{
  "passes": [
    {
      "id": 1,
      "satellite_id": 101,
      "station_id": 1,
      "aos": "2026-03-01T12:00:00Z",
      "los": "2026-03-01T12:10:00Z",
      "max_elevation_deg": 62.5,
      "duration_seconds": 600,
      "priority": "high"
    },
    {
      "id": 2,
      "satellite_id": 102,
      "station_id": 2,
      "aos": "2026-03-01T13:00:00Z",
      "los": "2026-03-01T13:08:00Z",
      "max_elevation_deg": 41.0,
      "duration_seconds": 480,
      "priority_level": 5
    }
  ],
  "data_queues": [
    {"satellite_id": 101, "critical_volume_mb": 250, "high_volume_mb": 40}
  ],
  "stations": [
    {"id": 1, "name": "Svalbard", "latitude": 78.2, "longitude": 15.4, "cost_per_minute": 2.5},
    {"id": 2, "name": "Inuvik", "latitude": 68.3, "longitude": -133.5}
  ],
  "constraints": {"max_passes_per_satellite": 5},
  "baseline": [1]
}`

func TestLoadSample(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScenario))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(s.Passes) != 2 {
		t.Fatalf("expected 2 passes, got %d", len(s.Passes))
	}
	first := s.Passes[0]
	if first.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %s", first.Priority)
	}
	wantAOS := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !first.AOS.Equal(wantAOS) {
		t.Fatalf("AOS = %v, want %v", first.AOS, wantAOS)
	}
	if s.Passes[1].PriorityLevel != 5 {
		t.Fatalf("expected priority level 5, got %d", s.Passes[1].PriorityLevel)
	}

	queue, ok := s.DataQueues[101]
	if !ok || queue.CriticalMB != 250 {
		t.Fatalf("unexpected queue for satellite 101: %+v", queue)
	}

	if got := s.Stations[1].CostPerMinute; got != 2.5 {
		t.Fatalf("station 1 cost = %v, want 2.5", got)
	}
	if got := s.Stations[2].CostPerMinute; got != model.DefaultCostPerMinute {
		t.Fatalf("station 2 should default to %v, got %v", model.DefaultCostPerMinute, got)
	}

	if s.Constraints.MaxPassesPerSatellite != 5 || s.Constraints.MaxTotalPasses != 0 {
		t.Fatalf("unexpected constraints: %+v", s.Constraints)
	}
	if !s.Baseline[1] || len(s.Baseline) != 1 {
		t.Fatalf("unexpected baseline: %v", s.Baseline)
	}
}

func TestLoadWithoutBaselineLeavesNil(t *testing.T) {
	s, err := Load(strings.NewReader(`{"passes": []}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Baseline != nil {
		t.Fatalf("expected nil baseline, got %v", s.Baseline)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"passes": [`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadRejectsPassWithoutID(t *testing.T) {
	payload := `{"passes": [{"satellite_id": 101, "station_id": 1}]}`
	if _, err := Load(strings.NewReader(payload)); err == nil {
		t.Fatal("expected error for pass with no id")
	}
}

func TestLoadRejectsDuplicateStation(t *testing.T) {
	payload := `{"stations": [{"id": 1, "name": "A"}, {"id": 1, "name": "B"}]}`
	if _, err := Load(strings.NewReader(payload)); err == nil {
		t.Fatal("expected error for duplicate station id")
	}
}
