// Package scoring implements the quiz scoring engine: it validates a
// recorded response list, aggregates per-option points into per-archetype
// totals with completion damping, ranks the totals, classifies result
// confidence, and assembles the final quiz result. The whole computation is
// a synchronous pure function of the response list and an immutable Config;
// the engine holds no state between calls.
package scoring

import (
	"totem-quiz/internal/domain"
)

// Engine computes quiz results. It is immutable after construction and safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine with a validated configuration. The
// configuration cannot be changed afterwards; build a new engine instead.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Compute scores a full response set and returns the immutable result.
//
// It fails with a *ValidationError if the response list is structurally
// malformed (checked before any aggregation work), or with ErrNoScores if no
// response contributed points to any archetype. Both propagate unchanged;
// there is no partial or degraded result.
func (e *Engine) Compute(responses []domain.Response) (domain.QuizResult, error) {
	if err := validateResponses(responses); err != nil {
		return domain.QuizResult{}, err
	}

	scores := aggregate(responses)

	primary, secondary, err := rank(scores)
	if err != nil {
		return domain.QuizResult{}, err
	}

	level := classifyConfidence(primary, secondary, e.cfg)

	return assemble(primary, secondary, level, e.cfg), nil
}
