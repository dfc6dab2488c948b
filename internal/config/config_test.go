package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/screener/internal/report"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Export.Format != "pdf" {
		t.Errorf("Export.Format = %q, want pdf", cfg.Export.Format)
	}
	if cfg.Crisis.HotlineNumber != "988" || cfg.Crisis.EmergencyNumber != "911" {
		t.Errorf("unexpected crisis defaults: %+v", cfg.Crisis)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `log_level: debug
catalog_path: ./catalog.yaml
practice:
  name: Lakeside Counseling
  phone: (555) 010-0199
export:
  dir: ./reports
  format: markdown
  include_icon: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.CatalogPath != "./catalog.yaml" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Practice.Name != "Lakeside Counseling" || cfg.Practice.Phone != "(555) 010-0199" {
		t.Errorf("Practice = %+v", cfg.Practice)
	}
	// Absent fields keep their defaults
	if cfg.Practice.Email != "intake@harbormh.example" {
		t.Errorf("Practice.Email = %q, want default", cfg.Practice.Email)
	}
	if cfg.Crisis.HotlineNumber != "988" {
		t.Errorf("Crisis.HotlineNumber = %q, want default", cfg.Crisis.HotlineNumber)
	}
	if cfg.Export.Dir != "./reports" || cfg.Export.Format != "markdown" || !cfg.Export.IncludeIcon {
		t.Errorf("Export = %+v", cfg.Export)
	}
}

// TestLoadConfigMissingFile returns defaults
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != DefaultConfig().LogLevel {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(configPath); err != nil {
		t.Errorf("empty file should yield defaults, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "log_level: [unterminated"},
		{"unknown field", "log_levl: debug\n"},
		{"wrong type", "export:\n  include_icon: maybe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".screener"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".screener", "config.yaml"), []byte("log_level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SCREENER_LOG_LEVEL", "trace")
	t.Setenv("SCREENER_PRACTICE_PHONE", "(555) 010-0777")
	t.Setenv("SCREENER_CRISIS_HOTLINE", "1-800-273-8255")
	t.Setenv("SCREENER_EXPORT_FORMAT", "html")
	t.Setenv("SCREENER_EXPORT_INCLUDE_ICON", "true")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Practice.Phone != "(555) 010-0777" {
		t.Errorf("Practice.Phone = %q", cfg.Practice.Phone)
	}
	if cfg.Crisis.HotlineNumber != "1-800-273-8255" {
		t.Errorf("Crisis.HotlineNumber = %q", cfg.Crisis.HotlineNumber)
	}
	if cfg.Export.Format != "html" || !cfg.Export.IncludeIcon {
		t.Errorf("Export = %+v", cfg.Export)
	}
	// Unset variables leave values alone
	if cfg.Practice.Name != DefaultConfig().Practice.Name {
		t.Errorf("Practice.Name changed to %q", cfg.Practice.Name)
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	t.Setenv("SCREENER_EXPORT_INCLUDE_ICON", "perhaps")

	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

// TestPrecedence checks defaults < file < environment < flags
func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "log_level: debug\nexport:\n  dir: from-file\n  format: json\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCREENER_EXPORT_DIR", "from-env")
	t.Setenv("SCREENER_EXPORT_FORMAT", "html")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	format := "markdown"
	cfg.MergeWithFlags(nil, nil, nil, &format)

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want file value", cfg.LogLevel)
	}
	if cfg.Export.Dir != "from-env" {
		t.Errorf("Export.Dir = %q, want env value", cfg.Export.Dir)
	}
	if cfg.Export.Format != "markdown" {
		t.Errorf("Export.Format = %q, want flag value", cfg.Export.Format)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	if path, explicit := ResolvePath(""); path != DefaultPath || explicit {
		t.Errorf("ResolvePath(\"\") = %q, %v", path, explicit)
	}

	t.Setenv(EnvConfigPath, "/etc/screener.yaml")
	if path, explicit := ResolvePath(""); path != "/etc/screener.yaml" || !explicit {
		t.Errorf("env path = %q, %v", path, explicit)
	}
	if path, _ := ResolvePath("flag.yaml"); path != "flag.yaml" {
		t.Errorf("flag path = %q, want flag.yaml", path)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"upper-case level", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
		{"md alias", func(c *Config) { c.Export.Format = "md" }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log_level"},
		{"bad format", func(c *Config) { c.Export.Format = "docx" }, "export.format"},
		{"empty dir", func(c *Config) { c.Export.Dir = " " }, "export.dir"},
		{"no practice phone", func(c *Config) { c.Practice.Phone = "" }, "practice.phone"},
		{"no hotline", func(c *Config) { c.Crisis.HotlineNumber = "" }, "crisis.hotline_number"},
		{"no emergency", func(c *Config) { c.Crisis.EmergencyNumber = "" }, "crisis.emergency_number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestContactAndCallToAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Practice.Name = "Lakeside Counseling"
	cfg.Practice.Phone = "(555) 010-0199"

	contact := cfg.Contact()
	if contact.Practice.Phone != "(555) 010-0199" || contact.Crisis.EmergencyNumber != "911" {
		t.Errorf("Contact() = %+v", contact)
	}

	want := "Contact Lakeside Counseling at (555) 010-0199 to schedule a confidential evaluation with one of our clinicians."
	if got := cfg.CallToAction(); got != want {
		t.Errorf("CallToAction() = %q, want %q", got, want)
	}

	format, err := cfg.ExportFormat()
	if err != nil || format != report.FormatPDF {
		t.Errorf("ExportFormat() = %v, %v", format, err)
	}
}
