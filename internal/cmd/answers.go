package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/screener/internal/models"
)

// loadAnswersFile reads a YAML (or JSON) mapping of question id to value.
// An empty file is an empty answer map.
func loadAnswersFile(path string) (models.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	answers := models.Answers{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&answers); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	for _, id := range answers.SortedKeys() {
		if answers[id] < 0 {
			return nil, models.NewValidationError(id, "value must be >= 0")
		}
	}
	return answers, nil
}

// answersFromFlags combines --answers and repeated --answer q=v flags.
// Individual pairs override values from the file.
func answersFromFlags(cmd *cobra.Command) (models.Answers, error) {
	answers := models.Answers{}

	path, _ := cmd.Flags().GetString("answers")
	if path != "" {
		fromFile, err := loadAnswersFile(path)
		if err != nil {
			return nil, err
		}
		answers = fromFile
	}

	pairs, _ := cmd.Flags().GetStringArray("answer")
	for _, pair := range pairs {
		id, value, err := models.ParseAnswer(pair)
		if err != nil {
			return nil, err
		}
		answers[id] = value
	}
	return answers, nil
}

func addAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().String("answers", "", "YAML or JSON file mapping question ids to values")
	cmd.Flags().StringArray("answer", nil, "Answer as question=value (repeatable)")
}

// unknownQuestions lists answered ids that the instrument does not define.
func unknownQuestions(in *models.Instrument, answers models.Answers) []string {
	var unknown []string
	for _, id := range answers.SortedKeys() {
		if !in.HasQuestion(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// invalidValues lists "id=value" for answers no option of the question offers.
func invalidValues(in *models.Instrument, answers models.Answers) []string {
	var invalid []string
	for _, q := range in.Questions {
		v, ok := answers[q.ID]
		if ok && !q.HasValue(v) {
			invalid = append(invalid, fmt.Sprintf("%s=%d", q.ID, v))
		}
	}
	sort.Strings(invalid)
	return invalid
}
