package export

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

// JSONExporter exports document trees as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// ContentType implements Exporter.
func (e *JSONExporter) ContentType() string { return "application/json" }

// Export implements Exporter.
func (e *JSONExporter) Export(roots []*doctree.Node) ([]byte, error) {
	if roots == nil {
		roots = []*doctree.Node{}
	}
	out, err := json.MarshalIndent(roots, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document tree: %w", err)
	}
	return append(out, '\n'), nil
}
