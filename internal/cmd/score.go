package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/screener/internal/display"
	"github.com/harrison/screener/internal/models"
	"github.com/harrison/screener/internal/scoring"
)

// scoreOutput is the --json form of a scored answer map.
type scoreOutput struct {
	InstrumentID string         `json:"instrument_id"`
	Title        string         `json:"title"`
	Family       scoring.Family `json:"family"`
	Answered     int            `json:"answered"`
	Questions    int            `json:"questions"`
	Crisis       bool           `json:"crisis"`
	Result       models.Result  `json:"result"`
}

// NewScoreCommand creates the score command
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <instrument-id>",
		Short: "Score an answer map without the interactive flow",
		Long: `Score a partial or complete set of answers for one instrument.

Answers come from a YAML or JSON file mapping question ids to option
values, from repeated --answer flags, or both (flags win). Unanswered
questions count as absent.

Examples:
  screener score stress --answer stress_1=2 --answer stress_2=1
  screener score gad_adult --answers answers.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: runScore,
	}

	addAnswerFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd, exportFlags{})
	if err != nil {
		return err
	}

	in, err := a.catalog.Get(args[0])
	if err != nil {
		return err
	}
	answers, err := answersFromFlags(cmd)
	if err != nil {
		return err
	}
	warnAnswers(a.errOut, in, answers)

	result := a.engine.Evaluate(in, answers)
	crisis := in.HasCrisisAnswer(answers)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out := scoreOutput{
			InstrumentID: in.ID,
			Title:        in.Title,
			Family:       a.engine.Family(in.ID),
			Answered:     len(answers) - len(unknownQuestions(in, answers)),
			Questions:    len(in.Questions),
			Crisis:       crisis,
			Result:       result,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	a.out.ResultCard(in.Title, result, crisis, a.cfg.Contact())
	return nil
}

// warnAnswers reports answers that scoring will ignore or that no option offers.
func warnAnswers(p *display.Printer, in *models.Instrument, answers models.Answers) {
	if unknown := unknownQuestions(in, answers); len(unknown) > 0 {
		p.Warning(display.Warning{
			Title:      fmt.Sprintf("Ignoring answers for questions not in %s", in.ID),
			Items:      unknown,
			Suggestion: fmt.Sprintf("Run 'screener show %s' to list question ids", in.ID),
		})
	}
	if invalid := invalidValues(in, answers); len(invalid) > 0 {
		p.Warning(display.Warning{
			Title:   "Some values are not offered by any option",
			Message: "They are scored as given",
			Items:   invalid,
		})
	}
}
