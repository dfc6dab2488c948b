package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Answers maps a question id to the numeric value of the chosen option.
type Answers map[string]int

// Clone returns an independent copy of the answer map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Truthy reports whether id was answered with a non-zero value.
// Unanswered questions are never truthy.
func (a Answers) Truthy(id string) bool {
	v, ok := a[id]
	return ok && v != 0
}

// CountTruthy returns how many of ids were answered with a non-zero value.
func (a Answers) CountTruthy(ids []string) int {
	n := 0
	for _, id := range ids {
		if a.Truthy(id) {
			n++
		}
	}
	return n
}

// Sum adds the recorded values of ids, skipping unanswered ones.
func (a Answers) Sum(ids []string) int {
	total := 0
	for _, id := range ids {
		total += a[id]
	}
	return total
}

// ParseAnswer parses a "question=value" pair as given on the command line.
func ParseAnswer(pair string) (string, int, error) {
	id, raw, ok := strings.Cut(pair, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", 0, fmt.Errorf("invalid answer %q: expected question=value", pair)
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, fmt.Errorf("invalid answer %q: value must be an integer", pair)
	}
	if value < 0 {
		return "", 0, fmt.Errorf("invalid answer %q: value must be >= 0", pair)
	}
	return id, value, nil
}

// SortedKeys returns the answered question ids in lexical order.
func (a Answers) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
