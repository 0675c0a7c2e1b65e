package planner

import (
	"fmt"

	"github.com/signalsfoundry/passplan/model"
)

// validatePasses rejects the whole request on the first malformed pass.
// The engine requires canonical, pre-validated records at its boundary;
// normalizing heterogeneous producer shapes is the producer's job, and a
// silently dropped pass would make schedules quietly wrong.
func validatePasses(passes []model.Pass) error {
	for i, p := range passes {
		switch {
		case p.ID <= 0:
			return fmt.Errorf("pass at index %d: missing or invalid id", i)
		case p.SatelliteID <= 0:
			return fmt.Errorf("pass %d: missing or invalid satellite_id", p.ID)
		case p.StationID <= 0:
			return fmt.Errorf("pass %d: missing or invalid station_id", p.ID)
		case p.AOS.IsZero() || p.LOS.IsZero():
			return fmt.Errorf("pass %d: missing window bounds", p.ID)
		case !p.LOS.After(p.AOS):
			return fmt.Errorf("pass %d: LOS %s is not after AOS %s",
				p.ID, p.LOS.Format(timeLayout), p.AOS.Format(timeLayout))
		case p.MaxElevationDeg < 0 || p.MaxElevationDeg > 90:
			return fmt.Errorf("pass %d: max elevation %.1f outside [0, 90]", p.ID, p.MaxElevationDeg)
		case p.DurationSeconds < 0:
			return fmt.Errorf("pass %d: negative duration", p.ID)
		}
	}
	return nil
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
