package export

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

// Format names.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatTerm     = "term"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter serializes document trees.
type Exporter interface {
	Export(roots []*doctree.Node) ([]byte, error)
	// ContentType is the MIME type of the output.
	ContentType() string
}

// Options configures exporters. Fields not relevant to a format are ignored.
type Options struct {
	// Title of the HTML page.
	Title string
	// Width is the word wrap width of terminal output. Zero means 80.
	Width int
	// Style is a glamour standard style name ("dark", "light", "notty").
	// Empty means DefaultStyle.
	Style string
}

var factories = map[string]func(Options) (Exporter, error){
	FormatMarkdown: func(Options) (Exporter, error) { return NewMarkdownExporter(), nil },
	FormatHTML:     func(o Options) (Exporter, error) { return NewHTMLExporter(o.Title), nil },
	FormatJSON:     func(Options) (Exporter, error) { return NewJSONExporter(), nil },
	FormatTerm:     func(o Options) (Exporter, error) { return NewTermExporter(o.Width, o.Style) },
}

// New returns the exporter for format.
func New(format string, opts Options) (Exporter, error) {
	factory, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, format, Formats())
	}
	return factory(opts)
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
