package scoring

import "github.com/harrison/screener/internal/models"

// Concern band upper bounds, inclusive, in percent of the maximum score.
const (
	lowConcernMax      = 30
	moderateConcernMax = 60
)

// percentageStrategy scores instruments without bespoke criterion logic.
// The maximum is questions × the largest option value in the instrument.
type percentageStrategy struct{}

var (
	lowConcern = outcome{
		label:    "Low concern level",
		severity: models.SeverityLow,
		recommendations: []string{
			"Your answers suggest a low level of concern at this time.",
			"Keep up the routines that support your wellbeing, such as sleep, movement and connection with others.",
			"Repeat this check if things change or you notice new difficulties.",
		},
	}
	moderateConcern = outcome{
		label:    "Moderate concern level",
		severity: models.SeverityModerate,
		recommendations: []string{
			"Your answers suggest a moderate level of concern.",
			"Consider talking with a mental health professional about what you have been experiencing.",
			"Structured approaches such as cognitive behavioral therapy (CBT) can help with many of these difficulties.",
		},
	}
	highConcern = outcome{
		label:    "High concern level",
		severity: models.SeverityHigh,
		recommendations: []string{
			"Your answers suggest a high level of concern.",
			"We recommend scheduling an evaluation with a mental health professional soon.",
			"Effective, evidence-based treatments are available, and an evaluation is the first step toward them.",
		},
	}
)

func (percentageStrategy) Family() Family {
	return FamilyPercentage
}

func (percentageStrategy) Evaluate(in *models.Instrument, answers models.Answers) models.Result {
	total := totalScore(in, answers)
	max := len(in.Questions) * in.MaxOptionValue()

	// Bands compare exact fractions: 12 of 39 is 30.77% and not low.
	var o outcome
	switch {
	case total*100 <= lowConcernMax*max:
		o = lowConcern
	case total*100 <= moderateConcernMax*max:
		o = moderateConcern
	default:
		o = highConcern
	}

	return models.Result{
		InstrumentID:    in.ID,
		Score:           total,
		MaxScore:        max,
		Label:           o.label,
		Severity:        o.severity,
		Recommendations: append([]string(nil), o.recommendations...),
	}
}

func (percentageStrategy) References() []string {
	return nil
}

// Percentage returns the share of the maximum for a result, truncated to a
// whole percent for display. Banding does not use it.
func Percentage(r models.Result) int {
	if r.MaxScore <= 0 {
		return 0
	}
	return r.Score * 100 / r.MaxScore
}
