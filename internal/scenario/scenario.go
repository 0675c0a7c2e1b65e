// Package scenario loads optimization scenarios from JSON: candidate
// passes, satellite data queues, ground stations, constraints, and an
// optional baseline schedule.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signalsfoundry/passplan/model"
)

// Scenario is the in-memory form of a loaded scenario file, shaped the way
// the planner consumes it.
type Scenario struct {
	Passes      []model.Pass
	DataQueues  map[int64]model.DataQueue
	Stations    map[int64]model.GroundStation
	Constraints model.Constraints
	Baseline    map[int64]bool
}

// Internal JSON shapes — kept unexported so we are free to evolve them.
type scenarioJSON struct {
	Passes      []passJSON      `json:"passes"`
	DataQueues  []dataQueueJSON `json:"data_queues"`
	Stations    []stationJSON   `json:"stations"`
	Constraints constraintsJSON `json:"constraints"`
	Baseline    []int64         `json:"baseline"`
}

type passJSON struct {
	ID              int64     `json:"id"`
	SatelliteID     int64     `json:"satellite_id"`
	StationID       int64     `json:"station_id"`
	AOS             time.Time `json:"aos"`
	LOS             time.Time `json:"los"`
	MaxElevationDeg float64   `json:"max_elevation_deg"`
	DurationSeconds float64   `json:"duration_seconds"`
	Priority        string    `json:"priority"`       // tiered: critical/high/medium/low
	PriorityLevel   int       `json:"priority_level"` // numeric scale; overrides the tier when set
}

type dataQueueJSON struct {
	SatelliteID int64   `json:"satellite_id"`
	CriticalMB  float64 `json:"critical_volume_mb"`
	HighMB      float64 `json:"high_volume_mb"`
	MediumMB    float64 `json:"medium_volume_mb"`
	LowMB       float64 `json:"low_volume_mb"`
}

type stationJSON struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	LatitudeDeg     float64  `json:"latitude"`
	LongitudeDeg    float64  `json:"longitude"`
	AltitudeM       float64  `json:"elevation_m"`
	MinElevationDeg float64  `json:"min_elevation_deg"`
	CostPerMinute   *float64 `json:"cost_per_minute"` // optional; defaults to 1.0
	Capabilities    []string `json:"capabilities"`
}

type constraintsJSON struct {
	MaxPassesPerSatellite int `json:"max_passes_per_satellite"`
	MaxTotalPasses        int `json:"max_total_passes"`
}

// LoadFile opens path and loads the scenario it contains.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a JSON scenario from r. It fails on JSON and structural errors
// (missing pass IDs, duplicate station IDs); semantic validation of the
// passes themselves is the planner's job.
func Load(r io.Reader) (*Scenario, error) {
	var payload scenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	s := &Scenario{
		Passes:     make([]model.Pass, 0, len(payload.Passes)),
		DataQueues: make(map[int64]model.DataQueue, len(payload.DataQueues)),
		Stations:   make(map[int64]model.GroundStation, len(payload.Stations)),
		Constraints: model.Constraints{
			MaxPassesPerSatellite: payload.Constraints.MaxPassesPerSatellite,
			MaxTotalPasses:        payload.Constraints.MaxTotalPasses,
		},
	}

	for i, jp := range payload.Passes {
		if jp.ID == 0 {
			return nil, fmt.Errorf("pass at index %d has no id", i)
		}
		s.Passes = append(s.Passes, model.Pass{
			ID:              jp.ID,
			SatelliteID:     jp.SatelliteID,
			StationID:       jp.StationID,
			AOS:             jp.AOS,
			LOS:             jp.LOS,
			MaxElevationDeg: jp.MaxElevationDeg,
			DurationSeconds: jp.DurationSeconds,
			Priority:        model.ParsePriority(jp.Priority),
			PriorityLevel:   jp.PriorityLevel,
		})
	}

	for _, jq := range payload.DataQueues {
		if _, exists := s.DataQueues[jq.SatelliteID]; exists {
			return nil, fmt.Errorf("duplicate data queue for satellite %d", jq.SatelliteID)
		}
		s.DataQueues[jq.SatelliteID] = model.DataQueue{
			SatelliteID: jq.SatelliteID,
			CriticalMB:  jq.CriticalMB,
			HighMB:      jq.HighMB,
			MediumMB:    jq.MediumMB,
			LowMB:       jq.LowMB,
		}
	}

	for _, js := range payload.Stations {
		if js.ID == 0 {
			return nil, fmt.Errorf("station %q has no id", js.Name)
		}
		if _, exists := s.Stations[js.ID]; exists {
			return nil, fmt.Errorf("duplicate station id %d", js.ID)
		}
		cost := model.DefaultCostPerMinute
		if js.CostPerMinute != nil {
			cost = *js.CostPerMinute
		}
		s.Stations[js.ID] = model.GroundStation{
			ID:              js.ID,
			Name:            js.Name,
			LatitudeDeg:     js.LatitudeDeg,
			LongitudeDeg:    js.LongitudeDeg,
			AltitudeM:       js.AltitudeM,
			MinElevationDeg: js.MinElevationDeg,
			CostPerMinute:   cost,
			Capabilities:    js.Capabilities,
		}
	}

	if payload.Baseline != nil {
		s.Baseline = make(map[int64]bool, len(payload.Baseline))
		for _, id := range payload.Baseline {
			s.Baseline[id] = true
		}
	}

	return s, nil
}
