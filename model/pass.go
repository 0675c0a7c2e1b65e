package model

import (
	"strings"
	"time"
)

// Priority ranks how urgently a pass's downlink data should be scheduled.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// ParsePriority maps a free-form priority string to one of our Priority
// constants. Unknown or empty values default to PriorityMedium, which is
// what upstream pass producers mostly omit.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return PriorityCritical
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Pass is a candidate contact window between a satellite and a ground
// station, produced by a visibility provider. Passes are immutable inputs
// to the optimizer; the engine reads them and never mutates them.
type Pass struct {
	ID          int64
	SatelliteID int64
	StationID   int64

	// AOS and LOS bound the contact window (acquisition / loss of signal).
	// LOS must be strictly after AOS.
	AOS time.Time
	LOS time.Time

	// MaxElevationDeg is the peak elevation of the pass as seen from the
	// station, in degrees above the horizon.
	MaxElevationDeg float64

	// DurationSeconds is the usable contact time. A zero value means the
	// producer did not fill it in; consumers fall back to LOS - AOS.
	DurationSeconds float64

	// Priority is the tiered priority assigned by the producer.
	// PriorityLevel is an alternative numeric scale used by some producers;
	// when non-zero it takes precedence over Priority.
	Priority      Priority
	PriorityLevel int
}

// Window returns the pass duration derived from AOS/LOS.
func (p Pass) Window() time.Duration {
	return p.LOS.Sub(p.AOS)
}

// EffectiveDurationSeconds returns DurationSeconds, falling back to the
// AOS/LOS window when the producer left it unset.
func (p Pass) EffectiveDurationSeconds() float64 {
	if p.DurationSeconds > 0 {
		return p.DurationSeconds
	}
	return p.Window().Seconds()
}
