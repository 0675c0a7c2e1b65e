package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/signalsfoundry/passplan/internal/logging"
	"github.com/signalsfoundry/passplan/model"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyHeuristic = "heuristic"
	StrategyML        = "ml"
)

// mlFallbackNote is prepended to recommendations whenever the ml strategy
// runs, so callers can tell the result was produced by the fallback.
const mlFallbackNote = "ML strategy has no trained model yet; schedule was produced by the heuristic optimizer."

// Request bundles the inputs for one optimization call. All fields are
// read-only to the engine; Passes is required, the maps are optional and
// absent entries take documented defaults.
type Request struct {
	Passes      []model.Pass
	DataQueues  map[int64]model.DataQueue
	Stations    map[int64]model.GroundStation
	Constraints model.Constraints

	// Baseline is the previously active selection, used for delta metrics.
	// Nil means no baseline was supplied.
	Baseline map[int64]bool
}

// Strategy is a named, swappable optimization algorithm. Implementations
// are stateless between invocations: each call is a pure function of its
// request.
type Strategy interface {
	Name() string
	Optimize(ctx context.Context, req Request) (*model.Result, error)
}

// NewStrategy returns the strategy registered under name. An empty name
// selects the heuristic default; an unknown name is a configuration error
// reported at construction, not at optimization time.
func NewStrategy(name string, buffer time.Duration, log logging.Logger) (Strategy, error) {
	switch name {
	case "", StrategyHeuristic:
		return NewHeuristicStrategy(buffer, log), nil
	case StrategyML:
		return NewMLStrategy(buffer, log), nil
	default:
		return nil, fmt.Errorf("unknown optimization strategy %q", name)
	}
}

// HeuristicStrategy is the default rule-based optimizer: score every
// candidate, admit greedily under constraints, then compare and recommend.
type HeuristicStrategy struct {
	scorer      PassScorer
	selector    *ConflictAwareSelector
	comparator  ScheduleComparator
	recommender RecommendationEngine
	log         logging.Logger
}

// NewHeuristicStrategy builds the heuristic optimizer with the given
// station conflict buffer (non-positive selects the default).
func NewHeuristicStrategy(buffer time.Duration, log logging.Logger) *HeuristicStrategy {
	if log == nil {
		log = logging.Noop()
	}
	return &HeuristicStrategy{
		selector: NewConflictAwareSelector(buffer),
		log:      log,
	}
}

func (h *HeuristicStrategy) Name() string { return StrategyHeuristic }

// Optimize runs the scoring, selection, comparison, and recommendation
// phases in sequence. An empty candidate list is valid and yields an empty
// result.
func (h *HeuristicStrategy) Optimize(ctx context.Context, req Request) (*model.Result, error) {
	if err := validatePasses(req.Passes); err != nil {
		return nil, err
	}

	if len(req.Passes) == 0 {
		return &model.Result{
			Selected:        map[int64]bool{},
			Metrics:         map[string]float64{},
			Recommendations: []string{},
			Strategy:        h.Name(),
		}, nil
	}

	scored := make([]ScoredPass, 0, len(req.Passes))
	for _, p := range req.Passes {
		var queue *model.DataQueue
		if q, ok := req.DataQueues[p.SatelliteID]; ok {
			queue = &q
		}
		cost := model.DefaultCostPerMinute
		if station, ok := req.Stations[p.StationID]; ok {
			cost = station.CostPerMinute
		}
		scored = append(scored, ScoredPass{Pass: p, Score: h.scorer.Score(p, queue, cost)})
	}

	selected, stats := h.selector.Select(scored, req.Constraints)
	selected = h.improve(selected, scored, req.Constraints)

	h.log.Debug(ctx, "greedy selection complete",
		logging.Int("candidates", len(scored)),
		logging.Int("selected", len(selected)),
		logging.Int("station_conflicts", stats.StationConflicts),
		logging.Int("satellite_cap_hits", stats.SatelliteCapHits),
	)

	return &model.Result{
		Selected:        selected,
		Metrics:         h.comparator.Compare(req.Passes, selected, req.Baseline),
		Recommendations: h.recommender.Recommend(req.Passes, selected, req.DataQueues, req.Stations),
		Strategy:        h.Name(),
	}, nil
}

// improve is the local-search extension point of the two-phase pipeline.
// The greedy solution is currently returned unchanged; a future
// implementation can swap lower-scored admissions for better unselected
// candidates without touching the selection contract.
func (h *HeuristicStrategy) improve(selected map[int64]bool, scored []ScoredPass, c model.Constraints) map[int64]bool {
	return selected
}

// MLStrategy is a reserved placeholder for a learned optimizer. Until a
// model exists it delegates to the heuristic strategy and flags the
// fallback in the recommendations rather than failing or staying silent.
type MLStrategy struct {
	fallback *HeuristicStrategy
	log      logging.Logger
}

// NewMLStrategy builds the ml strategy with its heuristic fallback.
func NewMLStrategy(buffer time.Duration, log logging.Logger) *MLStrategy {
	if log == nil {
		log = logging.Noop()
	}
	return &MLStrategy{
		fallback: NewHeuristicStrategy(buffer, log),
		log:      log,
	}
}

func (m *MLStrategy) Name() string { return StrategyML }

// Optimize delegates to the heuristic fallback and prepends an advisory
// noting that the ml path is not implemented.
func (m *MLStrategy) Optimize(ctx context.Context, req Request) (*model.Result, error) {
	m.log.Debug(ctx, "ml strategy falling back to heuristic")

	res, err := m.fallback.Optimize(ctx, req)
	if err != nil {
		return nil, err
	}
	res.Strategy = m.Name()
	if len(req.Passes) > 0 {
		res.Recommendations = append([]string{mlFallbackNote}, res.Recommendations...)
	}
	return res, nil
}
