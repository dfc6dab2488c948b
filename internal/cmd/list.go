package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/screener/internal/catalog"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available screenings",
		Long: `List the screening instruments grouped as in the interactive menu.

With --dump the full catalog is written as YAML, in the layout accepted
by --catalog. Use it as a starting point for a substitute catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, exportFlags{})
			if err != nil {
				return err
			}

			dump, _ := cmd.Flags().GetBool("dump")
			if dump {
				data, err := catalog.Marshal(a.catalog.Instruments())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			sections, _, _ := buildMenu(a.catalog)
			a.out.CatalogMenu(sections)
			fmt.Fprintf(cmd.OutOrStdout(), "\nRun 'screener take <id>' to start, or 'screener take' to choose from this menu.\n")
			return nil
		},
	}

	cmd.Flags().Bool("dump", false, "Write the full catalog as YAML")

	return cmd
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <instrument-id>",
		Short: "Show an instrument's questions and option values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, exportFlags{})
			if err != nil {
				return err
			}

			in, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			a.out.InstrumentDetail(in)
			fmt.Fprintf(cmd.OutOrStdout(), "\nScoring: %s\n", a.engine.Family(in.ID))
			return nil
		},
	}
}
