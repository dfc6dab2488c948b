package models

// Severity is the styling classification token attached to a Result.
type Severity string

// Severity tokens
const (
	SeverityNone     Severity = "none"     // Below threshold
	SeverityLow      Severity = "low"      // Low concern band
	SeverityMild     Severity = "mild"     // Mild criterion-positive result
	SeverityModerate Severity = "moderate" // Moderate result or concern band
	SeverityHigh     Severity = "high"     // High concern band or positive screen
	SeveritySevere   Severity = "severe"   // Severe criterion-positive result
)

// Result is the scoring outcome for one instrument and answer map.
// It is produced fresh on every evaluation and never mutated.
type Result struct {
	InstrumentID    string   `json:"instrument_id"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"max_score"`
	Label           string   `json:"label"`
	Severity        Severity `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// Positive reports whether the result suggests anything above threshold.
func (r Result) Positive() bool {
	return r.Severity != SeverityNone && r.Severity != SeverityLow
}
