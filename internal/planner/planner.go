// Package planner implements the pass scheduling and optimization engine:
// multi-factor scoring of candidate passes, constraint-aware greedy
// selection, schedule metrics against a prior baseline, and advisory
// recommendations, all behind a pluggable strategy abstraction.
//
// The engine is purely computational. It holds no shared mutable state, so
// a single Planner is safe for concurrent use; inputs are read-only and
// every result is freshly allocated.
package planner

import (
	"context"
	"time"

	"github.com/signalsfoundry/passplan/internal/logging"
	"github.com/signalsfoundry/passplan/internal/observability"
	"github.com/signalsfoundry/passplan/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/passplan/internal/planner"

// Planner runs optimization requests through a configured strategy and
// records logs, metrics, and a trace span around each call.
type Planner struct {
	strategy Strategy
	log      logging.Logger
	metrics  *observability.PlannerCollector
	tracer   trace.Tracer
}

// NewPlanner builds a planner for the named strategy. The collector may be
// nil when metrics are not wanted. Unknown strategy names fail here.
func NewPlanner(strategyName string, buffer time.Duration, log logging.Logger, metrics *observability.PlannerCollector) (*Planner, error) {
	if log == nil {
		log = logging.Noop()
	}
	strategy, err := NewStrategy(strategyName, buffer, log)
	if err != nil {
		return nil, err
	}
	return &Planner{
		strategy: strategy,
		log:      log,
		metrics:  metrics,
		tracer:   otel.Tracer(tracerName),
	}, nil
}

// Strategy returns the name of the configured strategy.
func (p *Planner) Strategy() string { return p.strategy.Name() }

// Optimize executes one optimization call and stamps the result with the
// measured wall-clock time in milliseconds.
func (p *Planner) Optimize(ctx context.Context, req Request) (*model.Result, error) {
	ctx, span := p.tracer.Start(ctx, "Planner.Optimize",
		trace.WithAttributes(
			attribute.String("planner.strategy", p.strategy.Name()),
			attribute.Int("planner.candidates", len(req.Passes)),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := p.strategy.Optimize(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		p.metrics.ObserveOptimization(p.strategy.Name(), observability.OutcomeError, elapsed)
		span.RecordError(err)
		p.log.Error(ctx, "optimization failed",
			logging.String("strategy", p.strategy.Name()),
			logging.Err(err),
		)
		return nil, err
	}

	res.ComputationTimeMS = float64(elapsed.Microseconds()) / 1000

	p.metrics.ObserveOptimization(p.strategy.Name(), observability.OutcomeOK, elapsed)
	p.metrics.SetScheduleCounts(len(req.Passes), len(res.Selected), res.Metrics[model.MetricTotalContactMinutes])
	span.SetAttributes(attribute.Int("planner.selected", len(res.Selected)))

	p.log.Info(ctx, "optimization complete",
		logging.String("strategy", res.Strategy),
		logging.Int("candidates", len(req.Passes)),
		logging.Int("selected", len(res.Selected)),
		logging.Duration("elapsed", elapsed),
	)

	return res, nil
}
