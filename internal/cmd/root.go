package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for screener
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screener",
		Short: "Confidential mental health screening questionnaires",
		Long: `Screener walks you through short, anonymous mental health screening
questionnaires, scores your answers and suggests next steps.

Nothing you answer is stored or sent anywhere. Results are informational
only and are not a diagnosis. A copy of your results can be exported as
PDF, Markdown, HTML or JSON.

Configuration is loaded from .screener/config.yaml if present.
SCREENER_* environment variables and CLI flags override it.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .screener/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("catalog", "", "Path to a substitute instrument catalog (YAML or JSON)")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewTakeCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
