package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/screener/internal/config"
	"github.com/harrison/screener/internal/display"
	"github.com/harrison/screener/internal/watch"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog, scoring table and menu for consistency",
		Long: `Load the configuration and instrument catalog and check that:
  - Every instrument is well formed (ids, questions, options, values)
  - Every question the scoring table reads exists in its instrument
  - Every instrument named in the screening menu exists in the catalog

Use the global --catalog flag to check a substitute catalog. With --watch
the checks are repeated whenever the catalog or config file changes,
until interrupted.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	cmd.Flags().Bool("watch", false, "Re-run the checks when the catalog or config file changes")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	watchMode, _ := cmd.Flags().GetBool("watch")
	if !watchMode {
		return validateOnce(cmd)
	}

	p := display.NewPrinter(cmd.OutOrStdout(), display.ColorEnabled(cmd.OutOrStdout()))
	if err := validateOnce(cmd); err != nil {
		p.Warning(display.Warning{Title: "Validation failed", Message: err.Error()})
	}

	paths, err := watchedFiles(cmd)
	if err != nil {
		return err
	}
	w, err := watch.New(paths...)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s (Ctrl+C to stop)\n", strings.Join(paths, ", "))
	return watchLoop(ctx, p, w.Changes(), w.Errors(), func() error { return validateOnce(cmd) })
}

// watchedFiles lists the catalog and config files that exist or were named.
func watchedFiles(cmd *cobra.Command) ([]string, error) {
	var paths []string

	configFlag, _ := cmd.Flags().GetString("config")
	configPath, explicit := config.ResolvePath(configFlag)
	if _, err := os.Stat(configPath); err == nil || explicit {
		paths = append(paths, configPath)
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c := changedString(cmd.Flags(), "catalog"); c != nil {
		cfg.CatalogPath = *c
	}
	if cfg.CatalogPath != "" {
		paths = append(paths, cfg.CatalogPath)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("nothing to watch: the built-in catalog is in use and %s does not exist", configPath)
	}
	return paths, nil
}

// watchLoop re-runs revalidate for every change until ctx is done.
// Validation failures are reported and watching continues.
func watchLoop(ctx context.Context, p *display.Printer, changes <-chan watch.Change, errs <-chan error, revalidate func() error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-changes:
			fmt.Fprintln(p.Writer())
			if c.Removed {
				p.Notice(fmt.Sprintf("%s was removed", c.Path))
			} else {
				p.Notice(fmt.Sprintf("%s changed, validating again", c.Path))
			}
			if err := revalidate(); err != nil {
				p.Warning(display.Warning{Title: "Validation failed", Message: err.Error()})
			}
		case err := <-errs:
			p.Warning(display.Warning{Title: "File watcher error", Message: err.Error()})
		}
	}
}

func validateOnce(cmd *cobra.Command) error {
	a, err := loadApp(cmd, exportFlags{})
	if err != nil {
		return err
	}

	a.out.Success(fmt.Sprintf("Configuration is valid (log level %s, export %s to %s)",
		strings.ToLower(a.cfg.LogLevel), a.cfg.Export.Format, a.cfg.Export.Dir))
	a.out.Success(fmt.Sprintf("Loaded %d instruments from %s", a.catalog.Len(), a.catalogSource))
	a.out.Success("Scoring table matches the catalog")

	if missing := a.engine.MissingInstruments(); len(missing) > 0 {
		a.out.Warning(display.Warning{
			Title:      "Scoring rules exist for instruments not in the catalog",
			Items:      missing,
			Suggestion: "These rules are skipped until the instruments are added",
		})
	}

	_, _, missing := buildMenu(a.catalog)
	if len(missing) > 0 {
		a.out.Warning(display.Warning{
			Title:      "Menu references unknown instruments",
			Message:    "These ids are not in the catalog:",
			Items:      missing,
			Suggestion: "Add the instruments to the catalog",
		})
		return fmt.Errorf("menu references %d unknown instrument(s)", len(missing))
	}

	fmt.Fprintln(cmd.OutOrStdout())
	a.out.Success("Catalog is valid")
	return nil
}
