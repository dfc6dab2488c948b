// Package report turns a scored screening into a downloadable document.
//
// Build assembles a renderer-neutral Document from the instrument, the
// recorded answers and the scoring result. Renderers then lay the Document
// out as PDF, Markdown, HTML or JSON. Every renderer emits the same blocks
// in the same order:
//
//	header, score, answers, recommendations, disclaimer, contact
//
// Build and the renderers are pure; only WriteFile touches the filesystem.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/harrison/screener/internal/models"
)

// Block names one section of a Document
type Block string

const (
	BlockHeader          Block = "header"
	BlockScore           Block = "score"
	BlockAnswers         Block = "answers"
	BlockRecommendations Block = "recommendations"
	BlockDisclaimer      Block = "disclaimer"
	BlockContact         Block = "contact"
)

// Blocks is the fixed rendering order.
var Blocks = []Block{
	BlockHeader,
	BlockScore,
	BlockAnswers,
	BlockRecommendations,
	BlockDisclaimer,
	BlockContact,
}

// NotAnswered is shown for questions without a recorded answer.
const NotAnswered = "Not answered"

// Disclaimer is printed on every exported document.
const Disclaimer = "This screening is for informational purposes only and is not a diagnosis. " +
	"Only a qualified mental health professional can diagnose a condition after a full evaluation. " +
	"Your answers were not stored or sent anywhere; this document is the only copy."

// Practice is the contact information of the hosting practice.
type Practice struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// CrisisLines are the resources shown when a crisis answer was selected.
type CrisisLines struct {
	HotlineName     string `json:"hotline_name"`
	HotlineNumber   string `json:"hotline_number"`
	TextLine        string `json:"text_line,omitempty"`
	EmergencyNumber string `json:"emergency_number"`
}

// Contact groups everything printed in the contact block.
type Contact struct {
	Practice Practice    `json:"practice"`
	Crisis   CrisisLines `json:"crisis"`
}

// ScoreSummary is the score block.
type ScoreSummary struct {
	Score      int             `json:"score"`
	MaxScore   int             `json:"max_score"`
	Percentage int             `json:"percentage"`
	Label      string          `json:"label"`
	Severity   models.Severity `json:"severity"`
}

// AnswerRow is one line of the question/answer table.
type AnswerRow struct {
	Number     int    `json:"number"`
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
	Answered   bool   `json:"answered"`
}

// Document is the renderer-neutral export.
type Document struct {
	InstrumentID    string       `json:"instrument_id"`
	Title           string       `json:"title"`
	Icon            string       `json:"icon,omitempty"`
	Date            time.Time    `json:"date"`
	Score           ScoreSummary `json:"score"`
	Answers         []AnswerRow  `json:"answers"`
	Recommendations []string     `json:"recommendations"`
	Disclaimer      string       `json:"disclaimer"`
	Contact         Contact      `json:"contact"`
	CrisisFlagged   bool         `json:"crisis_flagged"`
}

// Input is everything Build needs.
type Input struct {
	Instrument *models.Instrument
	Answers    models.Answers
	// Labels holds the exact option label chosen per question. When absent
	// the label of the first option carrying the recorded value is used.
	Labels      map[string]string
	Result      models.Result
	Contact     Contact
	Crisis      bool
	Date        time.Time
	IncludeIcon bool
}

// Build assembles the Document for a scored screening.
func Build(in Input) (*Document, error) {
	if in.Instrument == nil {
		return nil, errors.New("instrument is required")
	}
	if in.Result.InstrumentID != "" && in.Result.InstrumentID != in.Instrument.ID {
		return nil, fmt.Errorf("result belongs to %s, not %s", in.Result.InstrumentID, in.Instrument.ID)
	}

	doc := &Document{
		InstrumentID: in.Instrument.ID,
		Title:        in.Instrument.Title,
		Date:         in.Date,
		Score: ScoreSummary{
			Score:    in.Result.Score,
			MaxScore: in.Result.MaxScore,
			Label:    in.Result.Label,
			Severity: in.Result.Severity,
		},
		Answers:         make([]AnswerRow, 0, len(in.Instrument.Questions)),
		Recommendations: append([]string(nil), in.Result.Recommendations...),
		Disclaimer:      Disclaimer,
		Contact:         in.Contact,
		CrisisFlagged:   in.Crisis,
	}
	if in.IncludeIcon {
		doc.Icon = in.Instrument.Icon
	}
	if in.Result.MaxScore > 0 {
		doc.Score.Percentage = in.Result.Score * 100 / in.Result.MaxScore
	}

	for i := range in.Instrument.Questions {
		q := &in.Instrument.Questions[i]
		row := AnswerRow{
			Number:     i + 1,
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Answer:     NotAnswered,
		}
		if value, ok := in.Answers[q.ID]; ok {
			row.Answered = true
			row.Answer = answerLabel(q, value, in.Labels)
		}
		doc.Answers = append(doc.Answers, row)
	}

	return doc, nil
}

func answerLabel(q *models.Question, value int, labels map[string]string) string {
	if label, ok := labels[q.ID]; ok && label != "" {
		for _, o := range q.Options {
			if o.Label == label && o.Value == value {
				return label
			}
		}
	}
	if label, ok := q.LabelFor(value); ok {
		return label
	}
	return fmt.Sprintf("%d", value)
}

// ContactLines returns the contact block as display lines, crisis resources
// first when the crisis flag is set.
func (d *Document) ContactLines() []string {
	var lines []string
	c := d.Contact
	if d.CrisisFlagged {
		lines = append(lines, CrisisLinesText(c.Crisis)...)
		lines = append(lines, "")
	}

	if c.Practice.Name != "" {
		lines = append(lines, c.Practice.Name)
	}
	if c.Practice.Phone != "" {
		lines = append(lines, "Phone: "+c.Practice.Phone)
	}
	if c.Practice.Email != "" {
		lines = append(lines, "Email: "+c.Practice.Email)
	}
	if c.Practice.Address != "" {
		lines = append(lines, "Address: "+c.Practice.Address)
	}
	if c.Practice.Website != "" {
		lines = append(lines, "Website: "+c.Practice.Website)
	}
	return lines
}

// CrisisLinesText formats crisis resources for display.
func CrisisLinesText(c CrisisLines) []string {
	lines := []string{"If you are in crisis or thinking about harming yourself, help is available now:"}
	if c.HotlineNumber != "" {
		name := c.HotlineName
		if name == "" {
			name = "Crisis hotline"
		}
		lines = append(lines, fmt.Sprintf("%s: call or text %s", name, c.HotlineNumber))
	}
	if c.TextLine != "" {
		lines = append(lines, "Crisis text line: "+c.TextLine)
	}
	if c.EmergencyNumber != "" {
		lines = append(lines, fmt.Sprintf("Emergency services: %s", c.EmergencyNumber))
	}
	return lines
}
