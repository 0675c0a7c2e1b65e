package model

// DataQueue is a satellite's pending downlink backlog, split by priority
// tier. Volumes are megabytes and never negative. The optimizer treats the
// queue as a read-only snapshot supplied by the caller.
type DataQueue struct {
	SatelliteID int64
	CriticalMB  float64
	HighMB      float64
	MediumMB    float64
	LowMB       float64
}

// TotalMB returns the combined backlog across all tiers.
func (q DataQueue) TotalMB() float64 {
	return q.CriticalMB + q.HighMB + q.MediumMB + q.LowMB
}
