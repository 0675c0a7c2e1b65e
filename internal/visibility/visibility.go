// Package visibility predicts candidate contact windows between satellites
// and ground stations from TLE orbital elements. It produces the canonical
// model.Pass records the optimization engine consumes, so heterogeneous
// producer shapes never reach the engine boundary.
package visibility

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/passplan/internal/logging"
	"github.com/signalsfoundry/passplan/model"
)

const (
	// DefaultMinElevationDeg is the tracking mask applied when a station
	// does not declare its own.
	DefaultMinElevationDeg = 10.0

	// DefaultStep is the propagation sampling interval. Thirty seconds
	// resolves LEO passes of a few minutes without excessive SGP4 calls.
	DefaultStep = 30 * time.Second

	tleLineLength = 69
)

// Satellite couples an asset ID with its TLE element set.
type Satellite struct {
	ID       int64
	Name     string
	TLELine1 string
	TLELine2 string
}

// Predictor computes visibility passes by propagating TLEs with SGP4 and
// sampling topocentric look angles over a planning horizon.
type Predictor struct {
	step time.Duration
	log  logging.Logger
}

// NewPredictor builds a predictor with the given sampling step.
// A non-positive step falls back to DefaultStep.
func NewPredictor(step time.Duration, log logging.Logger) *Predictor {
	if step <= 0 {
		step = DefaultStep
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Predictor{step: step, log: log}
}

// Plan predicts passes for every satellite/station pair over [start, end)
// and assigns sequential pass IDs in deterministic order.
func (pr *Predictor) Plan(ctx context.Context, sats []Satellite, stations []model.GroundStation, start, end time.Time) ([]model.Pass, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("planning horizon end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	var all []model.Pass
	nextID := int64(1)
	for _, sat := range sats {
		for _, station := range stations {
			passes, err := pr.Passes(sat, station, start, end)
			if err != nil {
				return nil, fmt.Errorf("predict passes for satellite %d over station %d: %w", sat.ID, station.ID, err)
			}
			for i := range passes {
				passes[i].ID = nextID
				nextID++
			}
			all = append(all, passes...)
		}
	}

	pr.log.Debug(ctx, "visibility plan computed",
		logging.Int("satellites", len(sats)),
		logging.Int("stations", len(stations)),
		logging.Int("passes", len(all)),
	)
	return all, nil
}

// Passes predicts the visibility windows for one satellite over one station
// between start and end. Returned passes carry a zero ID; Plan assigns IDs.
func (pr *Predictor) Passes(sat Satellite, station model.GroundStation, start, end time.Time) ([]model.Pass, error) {
	if err := validateTLE(sat.TLELine1, sat.TLELine2); err != nil {
		return nil, fmt.Errorf("satellite %d: %w", sat.ID, err)
	}

	gosat := satellite.TLEToSat(sat.TLELine1, sat.TLELine2, satellite.GravityWGS72)
	observer := satellite.LatLong{
		Latitude:  station.LatitudeDeg * math.Pi / 180,
		Longitude: station.LongitudeDeg * math.Pi / 180,
	}
	observerAltKm := station.AltitudeM / 1000

	minElevation := station.MinElevationDeg
	if minElevation <= 0 {
		minElevation = DefaultMinElevationDeg
	}

	var (
		passes  []model.Pass
		inPass  bool
		aos     time.Time
		maxElev float64
	)

	for t := start; t.Before(end); t = t.Add(pr.step) {
		elevation := elevationDeg(gosat, observer, observerAltKm, t)
		visible := elevation >= minElevation

		switch {
		case visible && !inPass:
			inPass = true
			aos = t
			maxElev = elevation
		case visible && inPass:
			if elevation > maxElev {
				maxElev = elevation
			}
		case !visible && inPass:
			inPass = false
			passes = append(passes, buildPass(sat, station, aos, t, maxElev))
		}
	}
	if inPass {
		// Horizon ended mid-pass; close the window at the horizon.
		passes = append(passes, buildPass(sat, station, aos, end, maxElev))
	}

	return passes, nil
}

func buildPass(sat Satellite, station model.GroundStation, aos, los time.Time, maxElev float64) model.Pass {
	return model.Pass{
		SatelliteID:     sat.ID,
		StationID:       station.ID,
		AOS:             aos,
		LOS:             los,
		MaxElevationDeg: maxElev,
		DurationSeconds: los.Sub(aos).Seconds(),
		Priority:        model.PriorityMedium,
	}
}

// elevationDeg propagates the satellite to t and returns its elevation above
// the observer's horizon in degrees. go-satellite works in kilometres and
// radians throughout.
func elevationDeg(sat satellite.Satellite, observer satellite.LatLong, observerAltKm float64, t time.Time) float64 {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	position, _ := satellite.Propagate(sat, year, int(month), day, hour, minute, second)
	jday := satellite.JDay(year, int(month), day, hour, minute, second)
	angles := satellite.ECIToLookAngles(position, observer, observerAltKm, jday)

	return angles.El * 180 / math.Pi
}

func validateTLE(line1, line2 string) error {
	l1 := strings.TrimRight(line1, "\r\n ")
	l2 := strings.TrimRight(line2, "\r\n ")
	if len(l1) < tleLineLength || !strings.HasPrefix(l1, "1 ") {
		return fmt.Errorf("malformed TLE line 1: %q", line1)
	}
	if len(l2) < tleLineLength || !strings.HasPrefix(l2, "2 ") {
		return fmt.Errorf("malformed TLE line 2: %q", line2)
	}
	return nil
}
