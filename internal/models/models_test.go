package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInstrument() *Instrument {
	return &Instrument{
		ID:    "sample",
		Title: "Sample",
		Questions: []Question{
			{ID: "s_1", Prompt: "First?", Options: []Option{
				{Value: 1, Label: "Yes"},
				{Value: 0, Label: "No"},
			}},
			{ID: "s_2", Prompt: "Second?", Options: []Option{
				{Value: 0, Label: "No problem"},
				{Value: 0, Label: "Minor problem"},
				{Value: 1, Label: "Moderate problem"},
				{Value: 1, Label: "Serious problem", Crisis: true},
			}},
		},
	}
}

func TestAnswersHelpers(t *testing.T) {
	a := Answers{"x": 2, "y": 0, "z": 1}

	assert.True(t, a.Truthy("x"))
	assert.False(t, a.Truthy("y"))
	assert.False(t, a.Truthy("missing"))
	assert.Equal(t, 2, a.CountTruthy([]string{"x", "y", "z", "missing"}))
	assert.Equal(t, 3, a.Sum([]string{"x", "y", "z", "missing"}))
	assert.Equal(t, []string{"x", "y", "z"}, a.SortedKeys())

	clone := a.Clone()
	clone["x"] = 9
	assert.Equal(t, 2, a["x"])
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in      string
		id      string
		value   int
		wantErr string
	}{
		{in: "gad_a1=1", id: "gad_a1", value: 1},
		{in: " dep_9 = 3 ", id: "dep_9", value: 3},
		{in: "gad_a1", wantErr: "expected question=value"},
		{in: "=1", wantErr: "expected question=value"},
		{in: "gad_a1=yes", wantErr: "must be an integer"},
		{in: "gad_a1=-1", wantErr: "must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, value, err := ParseAnswer(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestInstrumentValidate(t *testing.T) {
	require.NoError(t, sampleInstrument().Validate())

	tests := []struct {
		name    string
		mutate  func(in *Instrument)
		wantErr string
	}{
		{"missing id", func(in *Instrument) { in.ID = "" }, "instrument id is required"},
		{"missing title", func(in *Instrument) { in.Title = "" }, "title is required"},
		{"no questions", func(in *Instrument) { in.Questions = nil }, "at least one question"},
		{"empty question id", func(in *Instrument) { in.Questions[1].ID = "" }, "question 2 has no id"},
		{"duplicate question", func(in *Instrument) { in.Questions[1].ID = "s_1" }, "duplicate question id"},
		{"no options", func(in *Instrument) { in.Questions[0].Options = nil }, "has no options"},
		{"negative value", func(in *Instrument) { in.Questions[0].Options[0].Value = -1 }, "negative value"},
		{"stats mismatch", func(in *Instrument) { in.Stats.Questions = 5 }, "stats list 5 questions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInstrument()
			tt.mutate(in)
			err := in.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQuestionLookups(t *testing.T) {
	in := sampleInstrument()

	q, idx, ok := in.Question("s_2")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Second?", q.Prompt)

	_, idx, ok = in.Question("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	assert.True(t, in.HasQuestion("s_1"))
	assert.Equal(t, 1, in.MaxOptionValue())

	label, ok := q.LabelFor(0)
	assert.True(t, ok)
	assert.Equal(t, "No problem", label)
	_, ok = q.LabelFor(7)
	assert.False(t, ok)

	assert.True(t, q.HasValue(1))
	assert.False(t, q.HasValue(2))
}

func TestCrisisDetection(t *testing.T) {
	in := sampleInstrument()

	assert.True(t, in.Questions[1].IsCrisisValue(1), "any crisis option sharing the value wins")
	assert.False(t, in.Questions[1].IsCrisisValue(0))

	assert.False(t, in.HasCrisisAnswer(Answers{"s_1": 1, "s_2": 0}))
	assert.True(t, in.HasCrisisAnswer(Answers{"s_2": 1}))
	assert.False(t, in.HasCrisisAnswer(nil))
}

func TestResultPositive(t *testing.T) {
	for sev, want := range map[Severity]bool{
		SeverityNone:     false,
		SeverityLow:      false,
		SeverityMild:     true,
		SeverityModerate: true,
		SeverityHigh:     true,
		SeveritySevere:   true,
	} {
		assert.Equal(t, want, Result{Severity: sev}.Positive(), string(sev))
	}
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = NewNotFoundError("instrument", "x")
	assert.EqualError(t, err, `instrument "x" not found`)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = NewValidationError("q1", "please select an answer")
	assert.EqualError(t, err, "q1: please select an answer")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidation(err))
	assert.EqualError(t, NewValidationError("", "bare"), "bare")

	err = NewStateError("answer", "idle")
	assert.EqualError(t, err, "cannot answer while session is idle")
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, IsValidation(err))
}
