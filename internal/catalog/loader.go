package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/screener/internal/models"
)

// Format represents the encoding of a catalog file
type Format int

const (
	// FormatUnknown represents an unsupported file extension
	FormatUnknown Format = iota
	// FormatYAML represents a .yaml or .yml catalog file
	FormatYAML
	// FormatJSON represents a .json catalog file
	FormatJSON
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat detects the catalog format from the file extension
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// file is the on-disk layout of a catalog file.
type file struct {
	Instruments []models.Instrument `yaml:"instruments"`
}

// Load reads a catalog file and returns a validated Catalog.
func Load(path string) (*Catalog, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unsupported catalog file %s: expected .yaml, .yml or .json", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML or JSON catalog document. JSON is accepted because it
// is a subset of YAML. Unknown fields are rejected so typos surface early.
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(doc.Instruments)
}

// Marshal encodes instruments in the catalog file layout.
func Marshal(instruments []models.Instrument) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file{Instruments: instruments}); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}
