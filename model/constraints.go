package model

// Constraints bound what the selector may admit. Zero values mean
// unconstrained.
type Constraints struct {
	// MaxPassesPerSatellite caps how many passes any single satellite may
	// receive in one schedule.
	MaxPassesPerSatellite int

	// MaxTotalPasses caps the overall schedule size.
	MaxTotalPasses int
}
