// Package session drives a single pass through one instrument.
//
// A Controller is a synchronous state machine with three phases:
//
//	Idle -> InProgress -> Completed
//
// Restart (or ReturnToCatalog) returns to Idle from any phase and discards
// every recorded answer. Nothing is persisted; answers live only as long as
// the Controller does.
//
// The crisis flag is sticky for the lifetime of a session: once a crisis
// option is recorded it stays set even if the answer is later changed.
package session

import (
	"github.com/google/uuid"

	"github.com/harrison/screener/internal/models"
)

// Phase is the controller's state
type Phase int

const (
	// Idle means no instrument is active
	Idle Phase = iota
	// InProgress means questions are being answered
	InProgress
	// Completed means the last question was answered and advanced past
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Lookup resolves instrument ids. *catalog.Catalog satisfies it.
type Lookup interface {
	Get(id string) (*models.Instrument, error)
}

// Scorer evaluates a possibly partial answer map. *scoring.Engine satisfies it.
type Scorer interface {
	Evaluate(in *models.Instrument, answers models.Answers) models.Result
}

// Logger receives session lifecycle events. Implementations must not expect
// answer values; only question ids are ever passed.
type Logger interface {
	LogSessionStart(sessionID string, in *models.Instrument)
	LogCrisisIndicator(sessionID, questionID string)
	LogSessionComplete(sessionID string, result models.Result)
	LogSessionReset(sessionID string, from string)
}

type noopLogger struct{}

func (noopLogger) LogSessionStart(string, *models.Instrument) {}
func (noopLogger) LogCrisisIndicator(string, string)          {}
func (noopLogger) LogSessionComplete(string, models.Result)   {}
func (noopLogger) LogSessionReset(string, string)             {}

// Option configures a Controller
type Option func(*Controller)

// WithLogger attaches a lifecycle logger.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller tracks the active instrument, the current question index and
// the answer map. It is not safe for concurrent use.
type Controller struct {
	lookup Lookup
	scorer Scorer
	logger Logger

	id         string
	phase      Phase
	instrument *models.Instrument
	index      int
	answers    models.Answers
	labels     map[string]string
	crisis     bool
}

// NewController creates an idle Controller.
func NewController(lookup Lookup, scorer Scorer, opts ...Option) *Controller {
	c := &Controller{
		lookup: lookup,
		scorer: scorer,
		logger: noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a session for instrumentID. It is only valid while Idle.
func (c *Controller) Start(instrumentID string) error {
	if c.phase != Idle {
		return models.NewStateError("start", c.phase.String())
	}
	in, err := c.lookup.Get(instrumentID)
	if err != nil {
		return err
	}

	c.id = uuid.NewString()
	c.phase = InProgress
	c.instrument = in
	c.index = 0
	c.answers = models.Answers{}
	c.labels = map[string]string{}
	c.crisis = false

	c.logger.LogSessionStart(c.id, in)
	return nil
}

// Answer records value for questionID, overwriting any earlier answer.
// Any question of the active instrument may be answered, not only the
// current one. The value must be offered by one of the question's options.
func (c *Controller) Answer(questionID string, value int) error {
	q, err := c.answerable("answer", questionID)
	if err != nil {
		return err
	}
	label, ok := q.LabelFor(value)
	if !ok {
		return models.NewValidationError(questionID, "value is not one of the question's options")
	}
	c.record(q, value, label, q.IsCrisisValue(value))
	return nil
}

// AnswerOption records the option at position idx (0-based) for questionID.
// Unlike Answer it keeps the exact label chosen when options share a value.
func (c *Controller) AnswerOption(questionID string, idx int) error {
	q, err := c.answerable("answer", questionID)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(q.Options) {
		return models.NewValidationError(questionID, "option is out of range")
	}
	o := q.Options[idx]
	c.record(q, o.Value, o.Label, o.Crisis)
	return nil
}

func (c *Controller) answerable(op, questionID string) (*models.Question, error) {
	if c.phase != InProgress {
		return nil, models.NewStateError(op, c.phase.String())
	}
	q, _, ok := c.instrument.Question(questionID)
	if !ok {
		return nil, models.NewValidationError(questionID, "question is not part of "+c.instrument.ID)
	}
	return q, nil
}

func (c *Controller) record(q *models.Question, value int, label string, crisis bool) {
	c.answers[q.ID] = value
	c.labels[q.ID] = label
	if crisis {
		c.crisis = true
		c.logger.LogCrisisIndicator(c.id, q.ID)
	}
}

// Next advances to the following question, or completes the session when
// the current question is the last one. The current question must have
// been answered.
func (c *Controller) Next() error {
	if c.phase != InProgress {
		return models.NewStateError("advance", c.phase.String())
	}
	q := &c.instrument.Questions[c.index]
	if _, ok := c.answers[q.ID]; !ok {
		return models.NewValidationError(q.ID, "answer required")
	}

	if c.index == len(c.instrument.Questions)-1 {
		c.phase = Completed
		c.logger.LogSessionComplete(c.id, c.score())
		return nil
	}
	c.index++
	return nil
}

// Previous moves back one question. At the first question it does nothing.
func (c *Controller) Previous() error {
	if c.phase != InProgress {
		return models.NewStateError("go back", c.phase.String())
	}
	if c.index > 0 {
		c.index--
	}
	return nil
}

// Restart discards the session and returns to Idle. It is valid from any
// phase.
func (c *Controller) Restart() {
	if c.phase != Idle {
		c.logger.LogSessionReset(c.id, c.phase.String())
	}
	c.id = ""
	c.phase = Idle
	c.instrument = nil
	c.index = 0
	c.answers = nil
	c.labels = nil
	c.crisis = false
}

// ReturnToCatalog is Restart under the name the navigation shell uses.
func (c *Controller) ReturnToCatalog() {
	c.Restart()
}

// ID returns the in-memory session id, or "" while Idle.
func (c *Controller) ID() string {
	return c.id
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Instrument returns the active instrument, or nil while Idle.
func (c *Controller) Instrument() *models.Instrument {
	return c.instrument
}

// Current returns the question at the current index. It returns nil unless
// the session is in progress.
func (c *Controller) Current() *models.Question {
	if c.phase != InProgress {
		return nil
	}
	return &c.instrument.Questions[c.index]
}

// Index returns the 0-based current question index.
func (c *Controller) Index() int {
	return c.index
}

// Progress returns the 1-based position of the current question and the
// question count. Both are zero while Idle.
func (c *Controller) Progress() (int, int) {
	if c.instrument == nil {
		return 0, 0
	}
	total := len(c.instrument.Questions)
	if c.phase == Completed {
		return total, total
	}
	return c.index + 1, total
}

// Answered returns the recorded value for questionID.
func (c *Controller) Answered(questionID string) (int, bool) {
	v, ok := c.answers[questionID]
	return v, ok
}

// Answers returns a copy of the answer map.
func (c *Controller) Answers() models.Answers {
	return c.answers.Clone()
}

// Labels returns a copy of the chosen option labels keyed by question id.
func (c *Controller) Labels() map[string]string {
	out := make(map[string]string, len(c.labels))
	for k, v := range c.labels {
		out[k] = v
	}
	return out
}

// CrisisTriggered reports whether any crisis option has been selected in
// this session.
func (c *Controller) CrisisTriggered() bool {
	return c.crisis
}

// Result scores the completed session. It is only valid once Completed.
func (c *Controller) Result() (models.Result, error) {
	if c.phase != Completed {
		return models.Result{}, models.NewStateError("score", c.phase.String())
	}
	return c.score(), nil
}

func (c *Controller) score() models.Result {
	return c.scorer.Evaluate(c.instrument, c.answers.Clone())
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	ID           string
	Phase        Phase
	InstrumentID string
	Index        int
	Total        int
	Answered     int
	Crisis       bool
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		ID:       c.id,
		Phase:    c.phase,
		Index:    c.index,
		Answered: len(c.answers),
		Crisis:   c.crisis,
	}
	if c.instrument != nil {
		s.InstrumentID = c.instrument.ID
		s.Total = len(c.instrument.Questions)
	}
	return s
}
