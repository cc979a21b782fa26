package export

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

const defaultWidth = 80

// DefaultStyle is the glamour style used when none is given. A fixed style
// keeps glamour from querying the terminal for its background color.
const DefaultStyle = "dark"

// noMarginStyle removes the document margins glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// TermExporter renders the Markdown export for a terminal.
type TermExporter struct {
	markdown *MarkdownExporter
	renderer *glamour.TermRenderer
}

// NewTermExporter creates a terminal exporter wrapping at width columns.
// style is a glamour standard style name; empty means DefaultStyle.
func NewTermExporter(width int, style string) (*TermExporter, error) {
	if width <= 0 {
		width = defaultWidth
	}
	if style == "" {
		style = DefaultStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return &TermExporter{
		markdown: &MarkdownExporter{anchors: false},
		renderer: r,
	}, nil
}

// ContentType implements Exporter.
func (e *TermExporter) ContentType() string { return "text/plain; charset=utf-8" }

// Export implements Exporter.
func (e *TermExporter) Export(roots []*doctree.Node) ([]byte, error) {
	md, err := e.markdown.Export(roots)
	if err != nil {
		return nil, err
	}
	out, err := e.renderer.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("failed to render for terminal: %w", err)
	}
	return []byte(out), nil
}
