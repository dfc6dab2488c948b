package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harrison/screener/internal/catalog"
	"github.com/harrison/screener/internal/config"
	"github.com/harrison/screener/internal/display"
	"github.com/harrison/screener/internal/logger"
	"github.com/harrison/screener/internal/scoring"
)

// now is replaced in tests that need a fixed export date.
var now = time.Now

// app holds everything a command needs once configuration is resolved.
type app struct {
	cfg           *config.Config
	log           *logger.ConsoleLogger
	catalog       *catalog.Catalog
	catalogSource string
	engine        *scoring.Engine
	out           *display.Printer // stdout
	errOut        *display.Printer // stderr, used for warnings
}

// exportFlags names the command's flags that override export settings.
// Empty names are not looked up.
type exportFlags struct {
	dir    string
	format string
}

// loadApp resolves configuration (defaults < file < env < flags), loads the
// catalog and builds the scoring engine.
func loadApp(cmd *cobra.Command, ef exportFlags) (*app, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.MergeWithFlags(
		changedString(flags, "log-level"),
		changedString(flags, "catalog"),
		changedString(flags, ef.dir),
		changedString(flags, ef.format),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &app{
		cfg:    cfg,
		log:    logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
		out:    display.NewPrinter(cmd.OutOrStdout(), display.ColorEnabled(cmd.OutOrStdout())),
		errOut: display.NewPrinter(cmd.ErrOrStderr(), display.ColorEnabled(cmd.ErrOrStderr())),
	}

	if cfg.CatalogPath != "" {
		a.catalog, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		a.catalogSource = cfg.CatalogPath
	} else {
		a.catalog = catalog.Default()
		a.catalogSource = "built-in catalog"
	}
	a.log.LogCatalogLoaded(a.catalogSource, a.catalog.Len())

	a.engine = scoring.NewEngine(a.catalog, scoring.WithCallToAction(cfg.CallToAction()))
	if err := a.engine.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// changedString returns the flag value only when the user set it.
func changedString(flags *pflag.FlagSet, name string) *string {
	if name == "" || flags.Lookup(name) == nil || !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}
