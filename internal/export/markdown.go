package export

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

// MarkdownExporter exports document trees to Markdown.
type MarkdownExporter struct {
	// anchors controls whether sections get an <a id> target.
	anchors bool
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{anchors: true}
}

// ContentType implements Exporter.
func (e *MarkdownExporter) ContentType() string { return "text/markdown; charset=utf-8" }

// Export implements Exporter.
func (e *MarkdownExporter) Export(roots []*doctree.Node) ([]byte, error) {
	var b strings.Builder
	for _, root := range roots {
		e.writeBlock(&b, root, 0)
	}
	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

// writeBlock writes a block-level node. depth is the number of enclosing
// sections.
func (e *MarkdownExporter) writeBlock(b *strings.Builder, n *doctree.Node, depth int) {
	switch n.Kind {
	case doctree.KindSection:
		if e.anchors && n.ID != "" {
			fmt.Fprintf(b, "<a id=\"%s\"></a>\n\n", n.ID)
		}
		for _, c := range n.Children {
			e.writeBlock(b, c, depth+1)
		}

	case doctree.KindTitle:
		fmt.Fprintf(b, "%s %s\n\n", heading(depth), n.Text)

	case doctree.KindSubtitle:
		fmt.Fprintf(b, "%s %s\n\n", heading(depth+1), n.Text)

	case doctree.KindParagraph, doctree.KindInline, doctree.KindReference:
		if text := inline(n); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}

	case doctree.KindContainer, doctree.KindFieldBody:
		for _, c := range n.Children {
			e.writeBlock(b, c, depth)
		}

	case doctree.KindTable:
		writeTable(b, n)

	case doctree.KindFieldList:
		for _, field := range n.Children {
			e.writeBlock(b, field, depth)
		}

	case doctree.KindField:
		for _, c := range n.Children {
			if c.Kind == doctree.KindFieldName {
				fmt.Fprintf(b, "**%s**\n\n", c.Text)
				continue
			}
			e.writeBlock(b, c, depth)
		}

	case doctree.KindBulletList:
		if len(n.Children) == 0 {
			return
		}
		writeList(b, n, 0)
		b.WriteString("\n")

	case doctree.KindLiteralBlock:
		text := n.Text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Fprintf(b, "```%s\n%s```\n\n", n.Language, text)
	}
}

// writeList writes a bullet list, nesting sub-lists by two spaces per level.
func writeList(b *strings.Builder, list *doctree.Node, level int) {
	indent := strings.Repeat("  ", level)
	for _, item := range list.Children {
		var text []string
		var nested []*doctree.Node
		for _, c := range item.Children {
			if c.Kind == doctree.KindBulletList {
				nested = append(nested, c)
				continue
			}
			if t := inline(c); t != "" {
				text = append(text, t)
			}
		}
		fmt.Fprintf(b, "%s- %s\n", indent, strings.Join(text, " "))
		for _, sub := range nested {
			writeList(b, sub, level+1)
		}
	}
}

func writeTable(b *strings.Builder, table *doctree.Node) {
	if len(table.Children) == 0 {
		return
	}
	for i, row := range table.Children {
		cells := make([]string, table.Columns)
		for j, entry := range row.Children {
			cells[j] = escapeCell(entry.PlainText())
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
		if i == 0 {
			sep := make([]string, table.Columns)
			for j := range sep {
				sep[j] = "---"
			}
			fmt.Fprintf(b, "| %s |\n", strings.Join(sep, " | "))
		}
	}
	b.WriteString("\n")
}

// inline renders text and links of n on a single line.
func inline(n *doctree.Node) string {
	if n.Kind == doctree.KindReference {
		return fmt.Sprintf("[%s](%s)", n.Text, linkDestination(n.RefID))
	}
	var b strings.Builder
	b.WriteString(n.Text)
	for _, c := range n.Children {
		b.WriteString(inline(c))
	}
	return b.String()
}

// linkDestination returns the link target for refID. Targets containing
// whitespace or parentheses are wrapped in angle brackets so the anchor id
// itself stays verbatim.
func linkDestination(refID string) string {
	if strings.ContainsAny(refID, " \t()<>") {
		return "<#" + refID + ">"
	}
	return "#" + refID
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func heading(depth int) string {
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	return strings.Repeat("#", depth)
}
