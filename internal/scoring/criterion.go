package scoring

import (
	"strconv"

	"github.com/harrison/screener/internal/models"
)

// group is a set of symptom questions of which at least min must be answered
// with a non-zero value.
type group struct {
	name  string
	items []string
	min   int
}

// outcome is the classification chosen by a strategy before the engine adds
// the score and call-to-action.
type outcome struct {
	label           string
	severity        models.Severity
	recommendations []string
}

// tally is what grading functions see once gates and groups are satisfied.
type tally struct {
	total    int             // Sum of every recorded answer
	subscore int             // Sum of the strategy's subscore items, or total
	counts   map[string]int  // Non-zero answers per group
	met      map[string]bool // Whether each group reached its minimum
}

// criterionStrategy implements the DSM-style model: every gate must be
// non-zero and the symptom groups must reach their minimum counts.
type criterionStrategy struct {
	gates    []string
	groups   []group
	anyGroup bool     // Positive when any group is met instead of all
	subscore []string // Items summed for grading; empty means total score
	grade    func(t tally) outcome
	negative outcome
}

func (s *criterionStrategy) Family() Family {
	return FamilyCriterion
}

func (s *criterionStrategy) Evaluate(in *models.Instrument, answers models.Answers) models.Result {
	t := tally{
		total:  totalScore(in, answers),
		counts: make(map[string]int, len(s.groups)),
		met:    make(map[string]bool, len(s.groups)),
	}
	t.subscore = t.total
	if len(s.subscore) > 0 {
		t.subscore = answers.Sum(s.subscore)
	}

	positive := true
	for _, id := range s.gates {
		if !answers.Truthy(id) {
			positive = false
			break
		}
	}

	anyMet := false
	allMet := true
	for _, g := range s.groups {
		n := answers.CountTruthy(g.items)
		t.counts[g.name] = n
		t.met[g.name] = n >= g.min
		if t.met[g.name] {
			anyMet = true
		} else {
			allMet = false
		}
	}
	if s.anyGroup {
		positive = positive && anyMet
	} else {
		positive = positive && allMet
	}

	o := s.negative
	if positive {
		o = s.grade(t)
	}

	return models.Result{
		InstrumentID:    in.ID,
		Score:           t.total,
		MaxScore:        questionMaxTotal(in),
		Label:           o.label,
		Severity:        o.severity,
		Recommendations: append([]string(nil), o.recommendations...),
	}
}

func (s *criterionStrategy) References() []string {
	var refs []string
	refs = append(refs, s.gates...)
	for _, g := range s.groups {
		refs = append(refs, g.items...)
	}
	refs = append(refs, s.subscore...)
	return refs
}

// graded returns a grading function that picks mild when the subscore is at
// most mildMax, moderate when at most moderateMax, and severe otherwise.
func graded(mildMax, moderateMax int, mild, moderate, severe outcome) func(t tally) outcome {
	return func(t tally) outcome {
		switch {
		case t.subscore <= mildMax:
			return mild
		case t.subscore <= moderateMax:
			return moderate
		default:
			return severe
		}
	}
}

// single returns a grading function with one positive outcome.
func single(o outcome) func(t tally) outcome {
	return func(tally) outcome { return o }
}

// totalScore sums the recorded values of the instrument's questions.
// Keys that are not questions of the instrument are ignored.
func totalScore(in *models.Instrument, answers models.Answers) int {
	total := 0
	for _, q := range in.Questions {
		total += answers[q.ID]
	}
	return total
}

// questionMaxTotal is the sum of each question's largest option value.
func questionMaxTotal(in *models.Instrument) int {
	total := 0
	for _, q := range in.Questions {
		max := 0
		for _, o := range q.Options {
			if o.Value > max {
				max = o.Value
			}
		}
		total += max
	}
	return total
}

// ids expands a prefix and an inclusive numeric range into question ids,
// e.g. ids("gad_a", 3, 5) -> gad_a3, gad_a4, gad_a5.
func ids(prefix string, from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, prefix+strconv.Itoa(i))
	}
	return out
}
