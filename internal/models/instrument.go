package models

import (
	"errors"
	"fmt"
)

// Instrument is one named screening questionnaire.
// Instruments are defined once and never mutated afterwards.
type Instrument struct {
	ID          string     `yaml:"id" json:"id"`                   // Stable catalog key
	Title       string     `yaml:"title" json:"title"`             // Display title
	Description string     `yaml:"description" json:"description"` // Short description
	Icon        string     `yaml:"icon" json:"icon"`               // Display glyph
	Stats       Stats      `yaml:"stats" json:"stats"`             // Browsing summary
	Questions   []Question `yaml:"questions" json:"questions"`     // Ordered questions
}

// Stats is the display summary shown when browsing the catalog.
type Stats struct {
	Questions int    `yaml:"questions" json:"questions"` // Number of questions
	Minutes   int    `yaml:"minutes" json:"minutes"`     // Estimated completion time
	Rating    string `yaml:"rating" json:"rating"`       // Qualitative label, e.g. "DSM-5 based"
}

// Question belongs to exactly one Instrument. ID is the answer-map key.
type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []Option `yaml:"options" json:"options"`
}

// Option is one labeled answer choice. Value is independent of position.
type Option struct {
	Value  int    `yaml:"value" json:"value"`
	Label  string `yaml:"label" json:"label"`
	Crisis bool   `yaml:"crisis,omitempty" json:"crisis,omitempty"`
}

// Summary is the lightweight view of an Instrument used for catalog browsing.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Stats       Stats  `json:"stats"`
}

// Summary returns the browsing summary for the instrument.
func (in *Instrument) Summary() Summary {
	return Summary{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Stats:       in.Stats,
	}
}

// Question returns the question with the given id and its index.
func (in *Instrument) Question(id string) (*Question, int, bool) {
	for i := range in.Questions {
		if in.Questions[i].ID == id {
			return &in.Questions[i], i, true
		}
	}
	return nil, -1, false
}

// HasQuestion reports whether id names one of the instrument's questions.
func (in *Instrument) HasQuestion(id string) bool {
	_, _, ok := in.Question(id)
	return ok
}

// MaxOptionValue returns the largest option value across all questions.
func (in *Instrument) MaxOptionValue() int {
	max := 0
	for _, q := range in.Questions {
		for _, o := range q.Options {
			if o.Value > max {
				max = o.Value
			}
		}
	}
	return max
}

// HasCrisisAnswer reports whether any recorded answer maps to a crisis option.
func (in *Instrument) HasCrisisAnswer(answers Answers) bool {
	for _, q := range in.Questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if q.IsCrisisValue(value) {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the instrument
func (in *Instrument) Validate() error {
	if in.ID == "" {
		return errors.New("instrument id is required")
	}
	if in.Title == "" {
		return fmt.Errorf("instrument %s: title is required", in.ID)
	}
	if len(in.Questions) == 0 {
		return fmt.Errorf("instrument %s: at least one question is required", in.ID)
	}

	seen := make(map[string]bool, len(in.Questions))
	for i, q := range in.Questions {
		if q.ID == "" {
			return fmt.Errorf("instrument %s: question %d has no id", in.ID, i+1)
		}
		if seen[q.ID] {
			return fmt.Errorf("instrument %s: duplicate question id %q", in.ID, q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("instrument %s: question %s has no options", in.ID, q.ID)
		}
		for _, o := range q.Options {
			if o.Value < 0 {
				return fmt.Errorf("instrument %s: question %s option %q has negative value %d", in.ID, q.ID, o.Label, o.Value)
			}
		}
	}

	if in.Stats.Questions != 0 && in.Stats.Questions != len(in.Questions) {
		return fmt.Errorf("instrument %s: stats list %d questions but %d are defined", in.ID, in.Stats.Questions, len(in.Questions))
	}
	return nil
}

// HasValue reports whether value is offered by one of the question's options.
func (q *Question) HasValue(value int) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// IsCrisisValue reports whether value selects a crisis option.
// When several options share a value, any crisis option among them wins.
func (q *Question) IsCrisisValue(value int) bool {
	for _, o := range q.Options {
		if o.Value == value && o.Crisis {
			return true
		}
	}
	return false
}

// LabelFor returns the label of the first option carrying value.
func (q *Question) LabelFor(value int) (string, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}
