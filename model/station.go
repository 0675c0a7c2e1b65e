package model

// GroundStation describes a ground antenna site. The optimizer only reads
// ID, Name, and CostPerMinute; the geographic fields drive visibility
// prediction.
type GroundStation struct {
	ID   int64
	Name string

	LatitudeDeg  float64
	LongitudeDeg float64
	AltitudeM    float64

	// MinElevationDeg is the mask below which the station cannot track.
	// Zero means unset; visibility prediction applies its own default.
	MinElevationDeg float64

	// CostPerMinute is the contact cost used as a scheduling penalty.
	CostPerMinute float64

	// Capabilities lists supported bands, e.g. "S-band", "X-band".
	Capabilities []string
}

// DefaultCostPerMinute applies when a pass references a station the caller
// did not describe.
const DefaultCostPerMinute = 1.0
