package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

// HTMLExporter exports document trees to a standalone HTML page.
type HTMLExporter struct {
	title    string
	template *template.Template
}

// view is a node together with the number of enclosing sections.
type view struct {
	*doctree.Node
	Depth int
}

// NewHTMLExporter creates a new HTML exporter. title is used for the page
// title and defaults to "ROS packages".
func NewHTMLExporter(title string) *HTMLExporter {
	if title == "" {
		title = "ROS packages"
	}
	tmpl := template.Must(template.New("page").Funcs(template.FuncMap{
		"children": children,
		"plain":    func(n *doctree.Node) string { return n.PlainText() },
		"header":   func(n *doctree.Node) *doctree.Node { return n.Children[0] },
		"body":     func(n *doctree.Node) []*doctree.Node { return n.Children[1:] },
		"deeper":   func(v view) view { return view{Node: v.Node, Depth: v.Depth + 1} },
	}).Parse(htmlTemplate))

	return &HTMLExporter{title: title, template: tmpl}
}

// ContentType implements Exporter.
func (e *HTMLExporter) ContentType() string { return "text/html; charset=utf-8" }

// Export implements Exporter.
func (e *HTMLExporter) Export(roots []*doctree.Node) ([]byte, error) {
	views := make([]view, 0, len(roots))
	for _, r := range roots {
		views = append(views, view{Node: r})
	}
	data := struct {
		Title string
		Roots []view
	}{Title: e.title, Roots: views}

	var buf bytes.Buffer
	if err := e.template.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// children wraps the children of v, one level deeper if v is a section.
func children(v view) []view {
	depth := v.Depth
	if v.Kind == doctree.KindSection {
		depth++
	}
	out := make([]view, 0, len(v.Children))
	for _, c := range v.Children {
		out = append(out, view{Node: c, Depth: depth})
	}
	return out
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; line-height: 1.5; }
table { border-collapse: collapse; margin: 0.5em 0 1em; }
th, td { border: 1px solid #ccc; padding: 0.25em 0.75em; text-align: left; }
dt { font-weight: bold; margin-top: 0.75em; }
pre { background: #f6f8fa; padding: 0.75em; }
</style>
</head>
<body>
{{range .Roots}}{{template "node" .}}{{end}}
</body>
</html>
{{define "heading"}}
{{- if le .Depth 1}}<h1>{{.Text}}</h1>
{{- else if eq .Depth 2}}<h2>{{.Text}}</h2>
{{- else if eq .Depth 3}}<h3>{{.Text}}</h3>
{{- else if eq .Depth 4}}<h4>{{.Text}}</h4>
{{- else if eq .Depth 5}}<h5>{{.Text}}</h5>
{{- else}}<h6>{{.Text}}</h6>
{{- end}}
{{end}}
{{define "inline"}}
{{- if eq .Kind "reference"}}<a href="#{{.RefID}}">{{.Text}}</a>
{{- else}}{{.Text}}{{range .Children}}{{template "inline" .}}{{end}}
{{- end}}
{{- end}}
{{define "node"}}
{{- if eq .Kind "section"}}<section id="{{.ID}}">
{{range children .}}{{template "node" .}}{{end}}</section>
{{else if eq .Kind "title"}}{{template "heading" .}}
{{- else if eq .Kind "subtitle"}}{{template "heading" (deeper .)}}
{{- else if eq .Kind "paragraph"}}{{if or .Text .Children}}<p>{{template "inline" .Node}}</p>
{{end}}
{{- else if eq .Kind "container"}}{{range children .}}{{template "node" .}}{{end}}
{{- else if eq .Kind "field_body"}}<dd>
{{range children .}}{{template "node" .}}{{end}}</dd>

{{- else if eq .Kind "table"}}{{if .Children}}<table>
<thead><tr>{{range (header .Node).Children}}<th>{{plain .}}</th>{{end}}</tr></thead>
<tbody>
{{range body .Node}}<tr>{{range .Children}}<td>{{plain .}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{end}}
{{- else if eq .Kind "field_list"}}<dl>
{{range children .}}{{template "node" .}}{{end}}</dl>
{{else if eq .Kind "field"}}{{range children .}}{{template "node" .}}{{end}}
{{- else if eq .Kind "field_name"}}<dt>{{.Text}}</dt>
{{else if eq .Kind "bullet_list"}}<ul>
{{range children .}}{{template "node" .}}{{end}}</ul>
{{else if eq .Kind "list_item"}}<li>{{range children .}}{{if eq .Kind "paragraph"}}{{template "inline" .Node}}{{else}}{{template "node" .}}{{end}}{{end}}</li>
{{else if eq .Kind "literal_block"}}<pre><code class="language-{{.Language}}">{{.Text}}</code></pre>
{{else if or (eq .Kind "inline") (eq .Kind "reference")}}{{template "inline" .Node}}
{{- end}}
{{- end}}`
