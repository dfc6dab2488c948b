package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/screener/internal/catalog"
	"github.com/harrison/screener/internal/models"
	"github.com/harrison/screener/internal/scoring"
)

type recordingLogger struct {
	events []string
	crisis []string
}

func (r *recordingLogger) LogSessionStart(id string, in *models.Instrument) {
	r.events = append(r.events, "start:"+in.ID)
}

func (r *recordingLogger) LogCrisisIndicator(id, questionID string) {
	r.crisis = append(r.crisis, questionID)
}

func (r *recordingLogger) LogSessionComplete(id string, result models.Result) {
	r.events = append(r.events, "complete:"+result.Label)
}

func (r *recordingLogger) LogSessionReset(id, from string) {
	r.events = append(r.events, "reset:"+from)
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	cat := catalog.Default()
	return NewController(cat, scoring.NewEngine(cat), opts...)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestDepressionNavigationScenario(t *testing.T) {
	c := newController(t)

	require.NoError(t, c.Start("depression"))
	assert.Equal(t, InProgress, c.Phase())
	assert.Equal(t, "dep_1", c.Current().ID)
	assert.NotEmpty(t, c.ID())

	err := c.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Equal(t, "dep_1", c.Current().ID)

	require.NoError(t, c.Answer("dep_1", 1))
	require.NoError(t, c.Next())
	assert.Equal(t, "dep_9", c.Current().ID)
	pos, total := c.Progress()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, total)

	require.NoError(t, c.Answer("dep_9", 2))
	assert.True(t, c.CrisisTriggered())

	require.NoError(t, c.Next())
	assert.Equal(t, Completed, c.Phase())
	assert.Nil(t, c.Current())

	result, err := c.Result()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, "depression", result.InstrumentID)
}

func TestCrisisIsSticky(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("depression"))

	require.NoError(t, c.Answer("dep_9", 1))
	require.NoError(t, c.Answer("dep_9", 0))

	assert.True(t, c.CrisisTriggered())
	value, ok := c.Answered("dep_9")
	assert.True(t, ok)
	assert.Equal(t, 0, value)
	assert.Equal(t, "Not at all", c.Labels()["dep_9"])
}

func TestCrisisFromYesOption(t *testing.T) {
	log := &recordingLogger{}
	c := newController(t, WithLogger(log))
	require.NoError(t, c.Start("mdd_adult"))

	require.NoError(t, c.Answer("mdd_a8", 1))
	assert.False(t, c.CrisisTriggered())

	require.NoError(t, c.AnswerOption("mdd_a9", 0))
	assert.True(t, c.CrisisTriggered())
	assert.Equal(t, []string{"mdd_a9"}, log.crisis)
}

func TestRestartClearsCrisis(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("depression"))
	require.NoError(t, c.Answer("dep_9", 3))
	require.True(t, c.CrisisTriggered())

	c.Restart()
	assert.False(t, c.CrisisTriggered())

	require.NoError(t, c.Start("depression"))
	assert.False(t, c.CrisisTriggered())
	assert.Empty(t, c.Answers())
}

func TestAnswerValidation(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("gad_adult"))

	tests := []struct {
		name string
		call func() error
	}{
		{"unknown question", func() error { return c.Answer("mdd_a1", 1) }},
		{"value not offered", func() error { return c.Answer("gad_a3", 7) }},
		{"option index too large", func() error { return c.AnswerOption("gad_a3", 4) }},
		{"negative option index", func() error { return c.AnswerOption("gad_a3", -1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
	assert.Empty(t, c.Answers())
}

func TestAnswerOptionKeepsExactLabel(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("bipolar_screen"))

	require.NoError(t, c.AnswerOption("bp_11", 1))
	value, _ := c.Answered("bp_11")
	assert.Equal(t, 0, value)
	assert.Equal(t, "Minor problem", c.Labels()["bp_11"])

	require.NoError(t, c.Answer("bp_11", 0))
	assert.Equal(t, "No problem", c.Labels()["bp_11"])
}

func TestAnswerAnyQuestionOfInstrument(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("stress"))

	require.NoError(t, c.Answer("stress_4", 2))
	assert.Equal(t, "stress_1", c.Current().ID)

	require.NoError(t, c.Answer("stress_4", 1))
	assert.Equal(t, models.Answers{"stress_4": 1}, c.Answers())
}

func TestPreviousAtFirstQuestionIsNoOp(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("stress"))

	require.NoError(t, c.Previous())
	assert.Equal(t, 0, c.Index())

	require.NoError(t, c.Answer("stress_1", 1))
	require.NoError(t, c.Next())
	require.NoError(t, c.Previous())
	assert.Equal(t, "stress_1", c.Current().ID)

	// Going back keeps recorded answers, so advancing again is allowed.
	require.NoError(t, c.Next())
	assert.Equal(t, 1, c.Index())
}

func TestOperationsOutsideProgressFail(t *testing.T) {
	c := newController(t)

	for name, call := range map[string]func() error{
		"answer":   func() error { return c.Answer("dep_1", 1) },
		"option":   func() error { return c.AnswerOption("dep_1", 0) },
		"next":     c.Next,
		"previous": c.Previous,
	} {
		err := call()
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, models.ErrInvalidState), name)
	}

	_, err := c.Result()
	assert.True(t, errors.Is(err, models.ErrInvalidState))

	require.NoError(t, c.Start("depression"))
	require.NoError(t, c.Answer("dep_1", 0))
	require.NoError(t, c.Next())
	require.NoError(t, c.Answer("dep_9", 0))
	require.NoError(t, c.Next())
	require.Equal(t, Completed, c.Phase())

	err = c.Answer("dep_1", 1)
	var stateErr *models.StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, "completed", stateErr.Phase)
	assert.True(t, errors.Is(c.Next(), models.ErrInvalidState))
	assert.True(t, errors.Is(c.Previous(), models.ErrInvalidState))
}

func TestStartRequiresIdle(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("anxiety"))

	err := c.Start("stress")
	assert.True(t, errors.Is(err, models.ErrInvalidState))
	assert.Equal(t, "anxiety", c.Instrument().ID)
}

func TestStartUnknownInstrument(t *testing.T) {
	c := newController(t)

	err := c.Start("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, Idle, c.Phase())
	assert.Nil(t, c.Instrument())
}

func TestRestartFromEveryPhase(t *testing.T) {
	log := &recordingLogger{}
	c := newController(t, WithLogger(log))

	c.Restart()
	assert.Equal(t, Idle, c.Phase())

	require.NoError(t, c.Start("anxiety"))
	firstID := c.ID()
	require.NoError(t, c.Answer("anx_1", 1))
	c.ReturnToCatalog()
	assert.Equal(t, Idle, c.Phase())
	assert.Empty(t, c.ID())
	assert.Empty(t, c.Answers())

	require.NoError(t, c.Start("anxiety"))
	assert.NotEqual(t, firstID, c.ID())
	require.NoError(t, c.Answer("anx_1", 0))
	require.NoError(t, c.Next())
	require.NoError(t, c.Answer("anx_2", 0))
	require.NoError(t, c.Next())
	c.Restart()

	assert.Equal(t, []string{
		"start:anxiety",
		"reset:in progress",
		"start:anxiety",
		"complete:Low concern level",
		"reset:completed",
	}, log.events)
}

func TestAnswersReturnsCopy(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("sleep"))
	require.NoError(t, c.Answer("sleep_1", 2))

	answers := c.Answers()
	answers["sleep_1"] = 4
	labels := c.Labels()
	labels["sleep_1"] = "changed"

	v, _ := c.Answered("sleep_1")
	assert.Equal(t, 2, v)
	assert.NotEqual(t, "changed", c.Labels()["sleep_1"])
}

func TestSnapshot(t *testing.T) {
	c := newController(t)
	assert.Equal(t, Snapshot{Phase: Idle}, c.Snapshot())

	require.NoError(t, c.Start("stress"))
	require.NoError(t, c.Answer("stress_1", 3))
	require.NoError(t, c.Next())

	s := c.Snapshot()
	assert.Equal(t, c.ID(), s.ID)
	assert.Equal(t, InProgress, s.Phase)
	assert.Equal(t, "stress", s.InstrumentID)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Answered)
	assert.False(t, s.Crisis)
}

func TestCompletedProgress(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.Start("anxiety"))
	require.NoError(t, c.Answer("anx_1", 1))
	require.NoError(t, c.Next())
	require.NoError(t, c.Answer("anx_2", 1))
	require.NoError(t, c.Next())

	pos, total := c.Progress()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, total)
}
