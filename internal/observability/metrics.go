package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Optimization outcomes recorded on the planner_optimizations_total counter.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// PlannerCollector bundles Prometheus metrics for the pass planner and
// provides a ready-to-serve /metrics handler.
type PlannerCollector struct {
	gatherer prometheus.Gatherer

	OptimizationDuration prometheus.Histogram
	OptimizationsTotal   *prometheus.CounterVec

	CandidatePasses prometheus.Gauge
	SelectedPasses  prometheus.Gauge
	ContactMinutes  prometheus.Gauge
}

// NewPlannerCollector registers planner metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Registration tolerates collectors that already exist so repeated
// construction in one process reuses the same metrics.
func NewPlannerCollector(reg prometheus.Registerer) (*PlannerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_optimization_duration_seconds",
		Help:    "Wall-clock duration of pass schedule optimization calls.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
	duration, err := registerHistogram(reg, duration, "planner_optimization_duration_seconds")
	if err != nil {
		return nil, err
	}

	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_optimizations_total",
		Help: "Total optimization calls, labeled by strategy and outcome.",
	}, []string{"strategy", "outcome"})
	total, err = registerCounterVec(reg, total, "planner_optimizations_total")
	if err != nil {
		return nil, err
	}

	candidates, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_candidate_passes",
		Help: "Candidate passes offered to the most recent optimization call.",
	}), "planner_candidate_passes")
	if err != nil {
		return nil, err
	}
	selected, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_selected_passes",
		Help: "Passes admitted by the most recent optimization call.",
	}), "planner_selected_passes")
	if err != nil {
		return nil, err
	}
	minutes, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_contact_minutes",
		Help: "Total contact minutes in the most recent schedule.",
	}), "planner_contact_minutes")
	if err != nil {
		return nil, err
	}

	return &PlannerCollector{
		gatherer:             gatherer,
		OptimizationDuration: duration,
		OptimizationsTotal:   total,
		CandidatePasses:      candidates,
		SelectedPasses:       selected,
		ContactMinutes:       minutes,
	}, nil
}

// ObserveOptimization records one optimization call.
func (c *PlannerCollector) ObserveOptimization(strategy, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	if c.OptimizationDuration != nil {
		c.OptimizationDuration.Observe(d.Seconds())
	}
	if c.OptimizationsTotal != nil {
		c.OptimizationsTotal.WithLabelValues(strategy, outcome).Inc()
	}
}

// SetScheduleCounts updates the schedule gauges after a successful call.
func (c *PlannerCollector) SetScheduleCounts(candidates, selected int, contactMinutes float64) {
	if c == nil {
		return
	}
	if c.CandidatePasses != nil {
		c.CandidatePasses.Set(float64(candidates))
	}
	if c.SelectedPasses != nil {
		c.SelectedPasses.Set(float64(selected))
	}
	if c.ContactMinutes != nil {
		c.ContactMinutes.Set(contactMinutes)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PlannerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
