package catalog

import "github.com/harrison/screener/internal/models"

func question(id, prompt string, options []models.Option) models.Question {
	return models.Question{ID: id, Prompt: prompt, Options: options}
}

func yesNo() []models.Option {
	return []models.Option{
		{Value: 1, Label: "Yes"},
		{Value: 0, Label: "No"},
	}
}

// yesNoCrisis marks "Yes" as indicating self-harm risk.
func yesNoCrisis() []models.Option {
	return []models.Option{
		{Value: 1, Label: "Yes", Crisis: true},
		{Value: 0, Label: "No"},
	}
}

// twoWeekFrequency is the four-point "over the last two weeks" scale.
func twoWeekFrequency() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
}

// twoWeekFrequencyCrisis flags every non-zero frequency as crisis-indicating.
func twoWeekFrequencyCrisis() []models.Option {
	opts := twoWeekFrequency()
	for i := range opts {
		opts[i].Crisis = opts[i].Value > 0
	}
	return opts
}

func botherScale() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "A little bit"},
		{Value: 2, Label: "Moderately"},
		{Value: 3, Label: "Quite a bit"},
		{Value: 4, Label: "Extremely"},
	}
}

// behaviorFrequency scores "Never" and "Rarely" alike.
func behaviorFrequency() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 0, Label: "Rarely"},
		{Value: 1, Label: "Sometimes"},
		{Value: 2, Label: "Often"},
		{Value: 3, Label: "Very often"},
	}
}

func severityScale() []models.Option {
	return []models.Option{
		{Value: 0, Label: "None"},
		{Value: 1, Label: "Mild"},
		{Value: 2, Label: "Moderate"},
		{Value: 3, Label: "Severe"},
		{Value: 4, Label: "Extreme"},
	}
}

func monthFrequency() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Sometimes"},
		{Value: 2, Label: "Fairly often"},
		{Value: 3, Label: "Very often"},
	}
}

func sleepSeverity() []models.Option {
	return []models.Option{
		{Value: 0, Label: "None"},
		{Value: 1, Label: "Mild"},
		{Value: 2, Label: "Moderate"},
		{Value: 3, Label: "Severe"},
		{Value: 4, Label: "Very severe"},
	}
}
