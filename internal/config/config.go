package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/harrison/screener/internal/report"
)

// EnvPrefix prefixes every environment override, e.g. SCREENER_LOG_LEVEL.
const EnvPrefix = "SCREENER"

// EnvConfigPath names the variable that selects the config file.
const EnvConfigPath = EnvPrefix + "_CONFIG"

// DefaultPath is the config file used when neither --config nor
// SCREENER_CONFIG is given.
var DefaultPath = filepath.Join(".screener", "config.yaml")

// PracticeConfig is the hosting practice's contact information
type PracticeConfig struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	Website string `yaml:"website"`
}

// CrisisConfig lists the resources shown when a crisis answer is selected
type CrisisConfig struct {
	// HotlineName is the display name of the crisis line
	HotlineName string `yaml:"hotline_name"`

	// HotlineNumber is the number to call or text
	HotlineNumber string `yaml:"hotline_number"`

	// TextLine is an optional text-message line, e.g. "Text HOME to 741741"
	TextLine string `yaml:"text_line"`

	// EmergencyNumber is the local emergency services number
	EmergencyNumber string `yaml:"emergency_number"`
}

// ExportConfig controls report generation
type ExportConfig struct {
	// Dir is where reports are written
	Dir string `yaml:"dir"`

	// Format is the default format (pdf, markdown, html, json)
	Format string `yaml:"format"`

	// IncludeIcon adds the instrument icon to Markdown and HTML reports
	IncludeIcon bool `yaml:"include_icon"`
}

// Config represents screener configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// CatalogPath optionally replaces the built-in catalog with a YAML or JSON file
	CatalogPath string `yaml:"catalog_path"`

	Practice PracticeConfig `yaml:"practice"`
	Crisis   CrisisConfig   `yaml:"crisis"`
	Export   ExportConfig   `yaml:"export"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Practice: PracticeConfig{
			Name:    "Harbor Mental Health Associates",
			Phone:   "(555) 010-0123",
			Email:   "intake@harbormh.example",
			Website: "https://harbormh.example",
		},
		Crisis: CrisisConfig{
			HotlineName:     "988 Suicide & Crisis Lifeline",
			HotlineNumber:   "988",
			TextLine:        "Text HOME to 741741",
			EmergencyNumber: "911",
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: string(report.FormatPDF),
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// Fields absent from the file keep their defaults. A missing file yields the
// defaults without error; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads .screener/config.yaml in the specified directory.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultPath))
}

// ResolvePath picks the config file: the flag value, then SCREENER_CONFIG,
// then DefaultPath. explicit reports whether the user named the file.
func ResolvePath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	return DefaultPath, false
}

// Load resolves the config path, reads the file and applies environment
// overrides. A file the user named explicitly must exist.
func Load(flagPath string) (*Config, error) {
	path, explicit := ResolvePath(flagPath)
	if explicit {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envOverrides mirrors the settings that may come from the environment.
// Unset variables leave the pointers nil.
type envOverrides struct {
	LogLevel          *string `envconfig:"LOG_LEVEL"`
	CatalogPath       *string `envconfig:"CATALOG_PATH"`
	PracticeName      *string `envconfig:"PRACTICE_NAME"`
	PracticePhone     *string `envconfig:"PRACTICE_PHONE"`
	PracticeEmail     *string `envconfig:"PRACTICE_EMAIL"`
	PracticeAddress   *string `envconfig:"PRACTICE_ADDRESS"`
	PracticeWebsite   *string `envconfig:"PRACTICE_WEBSITE"`
	CrisisHotlineName *string `envconfig:"CRISIS_HOTLINE_NAME"`
	CrisisHotline     *string `envconfig:"CRISIS_HOTLINE"`
	CrisisTextLine    *string `envconfig:"CRISIS_TEXT_LINE"`
	EmergencyNumber   *string `envconfig:"EMERGENCY_NUMBER"`
	ExportDir         *string `envconfig:"EXPORT_DIR"`
	ExportFormat      *string `envconfig:"EXPORT_FORMAT"`
	ExportIncludeIcon *bool   `envconfig:"EXPORT_INCLUDE_ICON"`
}

// ApplyEnv overrides fields from SCREENER_* environment variables.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	setString(&c.LogLevel, env.LogLevel)
	setString(&c.CatalogPath, env.CatalogPath)
	setString(&c.Practice.Name, env.PracticeName)
	setString(&c.Practice.Phone, env.PracticePhone)
	setString(&c.Practice.Email, env.PracticeEmail)
	setString(&c.Practice.Address, env.PracticeAddress)
	setString(&c.Practice.Website, env.PracticeWebsite)
	setString(&c.Crisis.HotlineName, env.CrisisHotlineName)
	setString(&c.Crisis.HotlineNumber, env.CrisisHotline)
	setString(&c.Crisis.TextLine, env.CrisisTextLine)
	setString(&c.Crisis.EmergencyNumber, env.EmergencyNumber)
	setString(&c.Export.Dir, env.ExportDir)
	setString(&c.Export.Format, env.ExportFormat)
	if env.ExportIncludeIcon != nil {
		c.Export.IncludeIcon = *env.ExportIncludeIcon
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel, catalogPath, exportDir, exportFormat *string) {
	setString(&c.LogLevel, logLevel)
	setString(&c.CatalogPath, catalogPath)
	setString(&c.Export.Dir, exportDir)
	setString(&c.Export.Format, exportFormat)
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := report.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("export.dir cannot be empty")
	}

	if strings.TrimSpace(c.Practice.Phone) == "" {
		return fmt.Errorf("practice.phone cannot be empty")
	}
	if strings.TrimSpace(c.Crisis.HotlineNumber) == "" {
		return fmt.Errorf("crisis.hotline_number cannot be empty")
	}
	if strings.TrimSpace(c.Crisis.EmergencyNumber) == "" {
		return fmt.Errorf("crisis.emergency_number cannot be empty")
	}

	return nil
}

// ExportFormat returns the parsed export format.
func (c *Config) ExportFormat() (report.Format, error) {
	return report.ParseFormat(c.Export.Format)
}

// Contact converts the practice and crisis sections for report building.
func (c *Config) Contact() report.Contact {
	return report.Contact{
		Practice: report.Practice{
			Name:    c.Practice.Name,
			Phone:   c.Practice.Phone,
			Email:   c.Practice.Email,
			Address: c.Practice.Address,
			Website: c.Practice.Website,
		},
		Crisis: report.CrisisLines{
			HotlineName:     c.Crisis.HotlineName,
			HotlineNumber:   c.Crisis.HotlineNumber,
			TextLine:        c.Crisis.TextLine,
			EmergencyNumber: c.Crisis.EmergencyNumber,
		},
	}
}

// CallToAction is the contact line appended to every recommendation list.
func (c *Config) CallToAction() string {
	name := strings.TrimSpace(c.Practice.Name)
	if name == "" {
		name = "our office"
	}
	return fmt.Sprintf("Contact %s at %s to schedule a confidential evaluation with one of our clinicians.", name, c.Practice.Phone)
}
