// Package scoring computes screening results from answer maps.
//
// Scoring is pure: the Engine never mutates its inputs, performs no I/O and
// returns a freshly built models.Result on every call. Instruments are
// dispatched through an explicit table from instrument id to Strategy;
// instruments missing from the table use the percentage-of-maximum model.
//
// Partial answer maps are always accepted. Unanswered questions count as
// absent for gates and symptom counts, so a criterion instrument with a
// missing gate answer evaluates to "Below diagnostic threshold".
//
// Crisis detection is not part of scoring. Callers track the crisis flag
// (see the session package) and decide how to present it alongside a Result.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harrison/screener/internal/models"
)

// Family names a scoring model
type Family string

const (
	// FamilyCriterion is the gate and symptom-count model
	FamilyCriterion Family = "criterion"
	// FamilyPercentage is the percentage-of-maximum fallback model
	FamilyPercentage Family = "percentage"
)

// Strategy evaluates one instrument's answers.
type Strategy interface {
	// Evaluate produces a result from a possibly partial answer map.
	Evaluate(in *models.Instrument, answers models.Answers) models.Result
	// References lists every question id the strategy reads.
	References() []string
	// Family reports which scoring model the strategy implements.
	Family() Family
}

// Lookup resolves instrument ids. *catalog.Catalog satisfies it.
type Lookup interface {
	Get(id string) (*models.Instrument, error)
}

// Engine dispatches scoring requests to per-instrument strategies.
type Engine struct {
	lookup       Lookup
	strategies   map[string]Strategy
	fallback     Strategy
	callToAction string
}

// Option configures an Engine
type Option func(*Engine)

// WithCallToAction sets the contact line appended to every recommendation list.
// An empty string disables it.
func WithCallToAction(line string) Option {
	return func(e *Engine) {
		e.callToAction = line
	}
}

// WithStrategies replaces the dispatch table.
func WithStrategies(strategies map[string]Strategy) Option {
	return func(e *Engine) {
		e.strategies = strategies
	}
}

// DefaultCallToAction is used when no practice contact is configured.
const DefaultCallToAction = "Contact our office to schedule a confidential evaluation with one of our clinicians."

// NewEngine creates an Engine over lookup using DefaultStrategies.
func NewEngine(lookup Lookup, opts ...Option) *Engine {
	e := &Engine{
		lookup:       lookup,
		strategies:   DefaultStrategies(),
		fallback:     percentageStrategy{},
		callToAction: DefaultCallToAction,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.strategies == nil {
		e.strategies = map[string]Strategy{}
	}
	return e
}

// Score evaluates answers for the instrument with the given id.
// It returns a *models.NotFoundError for unknown ids and never fails on
// incomplete answers.
func (e *Engine) Score(instrumentID string, answers models.Answers) (models.Result, error) {
	in, err := e.lookup.Get(instrumentID)
	if err != nil {
		return models.Result{}, err
	}
	return e.Evaluate(in, answers), nil
}

// Evaluate scores answers against an already resolved instrument.
func (e *Engine) Evaluate(in *models.Instrument, answers models.Answers) models.Result {
	if answers == nil {
		answers = models.Answers{}
	}
	result := e.strategyFor(in.ID).Evaluate(in, answers)
	if e.callToAction != "" {
		result.Recommendations = append(result.Recommendations, e.callToAction)
	}
	return result
}

// Family reports which scoring model applies to an instrument id.
func (e *Engine) Family(instrumentID string) Family {
	return e.strategyFor(instrumentID).Family()
}

func (e *Engine) strategyFor(id string) Strategy {
	if s, ok := e.strategies[id]; ok {
		return s
	}
	return e.fallback
}

// Validate checks that every question referenced by a strategy exists in
// its instrument. Strategies whose instrument is absent from the lookup are
// skipped; see MissingInstruments.
func (e *Engine) Validate() error {
	var problems []string
	for _, id := range e.strategyIDs() {
		in, err := e.lookup.Get(id)
		if err != nil {
			continue
		}
		for _, ref := range e.strategies[id].References() {
			if !in.HasQuestion(ref) {
				problems = append(problems, fmt.Sprintf("%s: strategy references unknown question %q", id, ref))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("scoring table is inconsistent with catalog:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// MissingInstruments lists dispatch-table ids that the lookup cannot resolve.
func (e *Engine) MissingInstruments() []string {
	var missing []string
	for _, id := range e.strategyIDs() {
		if _, err := e.lookup.Get(id); err != nil {
			missing = append(missing, id)
		}
	}
	return missing
}

func (e *Engine) strategyIDs() []string {
	out := make([]string, 0, len(e.strategies))
	for id := range e.strategies {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
