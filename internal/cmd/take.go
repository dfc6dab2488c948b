package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harrison/screener/internal/display"
	"github.com/harrison/screener/internal/models"
	"github.com/harrison/screener/internal/report"
	"github.com/harrison/screener/internal/session"
)

// selectPrompt is shown when the user tries to advance without answering.
const selectPrompt = "Please select an answer before proceeding."

// NewTakeCommand creates the take command
func NewTakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take [instrument-id]",
		Short: "Take a screening interactively",
		Long: `Walk through a screening one question at a time.

Without an instrument id the screening menu is shown first. At each
question enter the number of your answer, or:

  b   go back to the previous question
  r   discard your answers and return to the menu
  q   quit

Press Enter on an answered question to keep your answer and move on.
Your answers are kept in memory only and are discarded when you leave.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTake,
	}

	cmd.Flags().String("export", "", "Save results in this format when finished: pdf, markdown, html, json")
	cmd.Flags().String("export-dir", "", "Directory for saved results (default from config)")

	return cmd
}

func runTake(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd, exportFlags{dir: "export-dir", format: "export"})
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
		if _, err := a.catalog.Get(id); err != nil {
			return err
		}
	}

	t := &takeFlow{
		app:        a,
		ctx:        cmd.Context(),
		p:          a.out,
		reader:     NewMenuReader(cmd.InOrStdin()),
		autoExport: cmd.Flags().Changed("export"),
		ctrl:       session.NewController(a.catalog, a.engine, session.WithLogger(a.log)),
	}
	return t.run(id)
}

// sessionOutcome is how a pass through the questions ended.
type sessionOutcome int

const (
	outcomeCompleted sessionOutcome = iota
	outcomeMenu
	outcomeQuit
)

// takeFlow drives one interactive screening on top of a session.Controller.
type takeFlow struct {
	app        *app
	ctx        context.Context
	p          *display.Printer
	reader     MenuReader
	autoExport bool
	ctrl       *session.Controller
}

func (t *takeFlow) run(id string) error {
	for {
		if id == "" {
			var err error
			id, err = chooseInstrument(t.p, t.app.catalog, t.reader)
			if err != nil || id == "" {
				return err
			}
		}

		if err := t.ctrl.Start(id); err != nil {
			return err
		}

		outcome, err := t.questions()
		if err != nil {
			return err
		}
		switch outcome {
		case outcomeQuit:
			return nil
		case outcomeMenu:
			id = ""
			continue
		}

		return t.finish()
	}
}

// questions runs the question loop until the session completes or the user
// leaves it.
func (t *takeFlow) questions() (sessionOutcome, error) {
	for t.ctrl.Phase() == session.InProgress {
		q := t.ctrl.Current()
		pos, total := t.ctrl.Progress()
		t.p.QuestionCard(q, pos, total, t.selectedOption(q))

		fmt.Fprint(t.p.Writer(), "> ")
		line, ok, err := readLine(t.reader)
		if err != nil {
			return outcomeQuit, err
		}
		if !ok {
			t.ctrl.ReturnToCatalog()
			return outcomeQuit, nil
		}

		switch line {
		case "q":
			t.ctrl.ReturnToCatalog()
			return outcomeQuit, nil
		case "r":
			t.ctrl.ReturnToCatalog()
			return outcomeMenu, nil
		case "b":
			if err := t.ctrl.Previous(); err != nil {
				return outcomeQuit, err
			}
			continue
		case "":
			if err := t.advance(); err != nil {
				return outcomeQuit, err
			}
			continue
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > len(q.Options) {
			t.p.Notice(fmt.Sprintf("Please enter a number between 1 and %d, or b, r or q.", len(q.Options)))
			continue
		}

		hadCrisis := t.ctrl.CrisisTriggered()
		if err := t.ctrl.AnswerOption(q.ID, n-1); err != nil {
			return outcomeQuit, err
		}
		if !hadCrisis && t.ctrl.CrisisTriggered() {
			proceed, err := t.crisisInterrupt()
			if err != nil {
				return outcomeQuit, err
			}
			if !proceed {
				t.ctrl.ReturnToCatalog()
				return outcomeMenu, nil
			}
		}
		if err := t.advance(); err != nil {
			return outcomeQuit, err
		}
	}
	return outcomeCompleted, nil
}

// advance moves to the next question, turning a missing answer into the
// inline prompt.
func (t *takeFlow) advance() error {
	err := t.ctrl.Next()
	if errors.Is(err, models.ErrValidation) {
		t.p.Notice(selectPrompt)
		return nil
	}
	return err
}

// selectedOption is the index of the option recorded for q, or -1.
func (t *takeFlow) selectedOption(q *models.Question) int {
	value, ok := t.ctrl.Answered(q.ID)
	if !ok {
		return -1
	}
	label := t.ctrl.Labels()[q.ID]
	for i, o := range q.Options {
		if o.Value == value && (label == "" || o.Label == label) {
			return i
		}
	}
	return -1
}

// crisisInterrupt shows crisis resources and asks whether to go on.
func (t *takeFlow) crisisInterrupt() (bool, error) {
	t.p.CrisisNotice(t.app.cfg.Contact())
	for {
		fmt.Fprint(t.p.Writer(), "Enter 'c' to continue the screening or 'a' to stop and discard your answers: ")
		line, ok, err := readLine(t.reader)
		if err != nil || !ok {
			return false, err
		}
		switch line {
		case "c", "continue":
			return true, nil
		case "a", "abandon":
			return false, nil
		}
		t.p.Notice("Please enter 'c' or 'a'.")
	}
}

// finish shows the result card and offers an export.
func (t *takeFlow) finish() error {
	result, err := t.ctrl.Result()
	if err != nil {
		return err
	}
	in := t.ctrl.Instrument()
	crisis := t.ctrl.CrisisTriggered()
	t.p.ResultCard(in.Title, result, crisis, t.app.cfg.Contact())

	save := t.autoExport
	if !save {
		fmt.Fprintf(t.p.Writer(), "\nSave a copy of your results as %s? [y/N]: ", t.app.cfg.Export.Format)
		line, _, err := readLine(t.reader)
		if err != nil {
			return err
		}
		save = line == "y" || line == "yes"
	}

	if save {
		path, err := t.app.writeReport(t.ctx, report.Input{
			Instrument: in,
			Answers:    t.ctrl.Answers(),
			Labels:     t.ctrl.Labels(),
			Result:     result,
			Crisis:     crisis,
		})
		if err != nil {
			return err
		}
		t.p.Success(fmt.Sprintf("Saved %s", path))
	}

	t.ctrl.ReturnToCatalog()
	return nil
}
