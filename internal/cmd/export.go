package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/screener/internal/report"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <instrument-id>",
		Short: "Render a results document for an answer map",
		Long: `Score an answer map and write the results document without the
interactive flow. The file is named <title>-screening-<date>.<ext>.

Examples:
  screener export gad_adult --answers answers.yaml
  screener export stress --answers answers.yaml --format html --output ./reports`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	addAnswerFlags(cmd)
	cmd.Flags().String("format", "", "Export format: pdf, markdown, html, json (default from config)")
	cmd.Flags().String("output", "", "Directory to write the document to (default from config)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd, exportFlags{dir: "output", format: "format"})
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
	path, err := a.writeReport(cmd.Context(), report.Input{
		Instrument: in,
		Answers:    answers,
		Result:     result,
		Crisis:     in.HasCrisisAnswer(answers),
	})
	if err != nil {
		return err
	}

	a.out.Success(fmt.Sprintf("Saved %s", path))
	return nil
}

// writeReport fills the contact, date and icon settings of input from the
// configuration, renders it in the configured format and writes it to the
// configured directory.
func (a *app) writeReport(ctx context.Context, input report.Input) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	format, err := a.cfg.ExportFormat()
	if err != nil {
		return "", err
	}
	renderer, err := report.RendererFor(format)
	if err != nil {
		return "", err
	}

	input.Contact = a.cfg.Contact()
	input.Date = now()
	input.IncludeIcon = a.cfg.Export.IncludeIcon

	doc, err := report.Build(input)
	if err != nil {
		return "", fmt.Errorf("failed to build report: %w", err)
	}
	path, err := report.WriteFile(ctx, a.cfg.Export.Dir, doc, renderer)
	if err != nil {
		return "", err
	}
	a.log.LogExportWritten(path, string(format))
	return path, nil
}
