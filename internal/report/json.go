package report

import (
	"encoding/json"
	"fmt"
)

// JSONRenderer renders the Document as JSON.
type JSONRenderer struct {
	Pretty bool // Indent output
}

// Extension returns "json"
func (*JSONRenderer) Extension() string { return "json" }

// Render marshals the Document. Blocks appear as top-level fields.
func (jr *JSONRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	var data []byte
	var err error
	if jr.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}
