package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree mirrors the shape the renderer produces for a small package.
func sampleTree() *doctree.Node {
	return doctree.Section("pkg_nav",
		doctree.Title("nav [Ros package]"),
		doctree.Paragraph("Navigation <stack>"),
		doctree.Subtitle("Table of content"),
		doctree.BulletList(
			doctree.ListItem(
				doctree.Paragraph("Executables"),
				doctree.BulletList(
					doctree.ListItem(doctree.Paragraph("", doctree.Reference("planner: Path planner", "exec_planner"))),
				),
			),
		),
		doctree.Container(
			doctree.Section("exec_planner",
				doctree.Title("planner [Executable]"),
				doctree.Subtitle("Parameters description"),
				doctree.FieldList(
					doctree.Field("frequency", doctree.Table(
						doctree.Row("Type", "Default", "Description"),
						doctree.Row("float", "10.0", "a|b"),
					)),
				),
				doctree.LiteralBlock("yaml", "planner:\n  ros__parameters:\n    frequency: 10.0\n"),
			),
		),
	)
}

func TestNew(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			e, err := New(format, Options{Style: "notty"})
			require.NoError(t, err)
			assert.NotEmpty(t, e.ContentType())
		})
	}

	_, err := New("pdf", Options{})
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, []string{"html", "json", "markdown", "term"}, Formats())
}

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter().Export([]*doctree.Node{sampleTree()})
	require.NoError(t, err)

	expected := strings.Join([]string{
		`<a id="pkg_nav"></a>`,
		``,
		`# nav [Ros package]`,
		``,
		`Navigation <stack>`,
		``,
		`## Table of content`,
		``,
		`- Executables`,
		`  - [planner: Path planner](#exec_planner)`,
		``,
		`<a id="exec_planner"></a>`,
		``,
		`## planner [Executable]`,
		``,
		`### Parameters description`,
		``,
		`**frequency**`,
		``,
		`| Type | Default | Description |`,
		`| --- | --- | --- |`,
		`| float | 10.0 | a\|b |`,
		``,
		"```yaml",
		`planner:`,
		`  ros__parameters:`,
		`    frequency: 10.0`,
		"```",
		``,
	}, "\n")

	if diff := cmp.Diff(expected, string(out)); diff != "" {
		t.Errorf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownExporter_EmptyCellsAndLists(t *testing.T) {
	tree := doctree.Section("launch_l",
		doctree.Title("l [Launch file]"),
		doctree.Paragraph(""),
		doctree.BulletList(),
		doctree.Table(doctree.Row("", "Type", "Description"), doctree.Row("In", "-", "-")),
	)

	out, err := NewMarkdownExporter().Export([]*doctree.Node{tree})
	require.NoError(t, err)
	assert.Contains(t, string(out), "|  | Type | Description |")
	assert.NotContains(t, string(out), "\n\n\n")
}

func TestHTMLExporter(t *testing.T) {
	out, err := NewHTMLExporter("").Export([]*doctree.Node{sampleTree()})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>ROS packages</title>")
	assert.Contains(t, html, `<section id="pkg_nav">`)
	assert.Contains(t, html, `<section id="exec_planner">`)
	assert.Contains(t, html, "<h1>nav [Ros package]</h1>")
	assert.Contains(t, html, "<h2>Table of content</h2>")
	assert.Contains(t, html, "<h2>planner [Executable]</h2>")
	assert.Contains(t, html, `<a href="#exec_planner">planner: Path planner</a>`)
	assert.Contains(t, html, "<th>Type</th>")
	assert.Contains(t, html, "<td>10.0</td>")
	assert.Contains(t, html, "<dt>frequency</dt>")
	assert.Contains(t, html, "Navigation &lt;stack&gt;")
	assert.NotContains(t, html, "<stack>")
}

func TestJSONExporter(t *testing.T) {
	tree := sampleTree()
	out, err := NewJSONExporter().Export([]*doctree.Node{tree})
	require.NoError(t, err)

	var decoded []*doctree.Node
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "pkg_nav", decoded[0].ID)
	assert.Equal(t, tree.PlainText(), decoded[0].PlainText())

	empty, err := NewJSONExporter().Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestTermExporter(t *testing.T) {
	e, err := NewTermExporter(0, "notty")
	require.NoError(t, err)

	out, err := e.Export([]*doctree.Node{sampleTree()})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "nav [Ros package]")
	assert.Contains(t, text, "frequency")
	assert.NotContains(t, text, `<a id=`)
}

func TestMarkdownExporter_LinkDestinations(t *testing.T) {
	testCases := []struct {
		refID string
		want  string
	}{
		{refID: "exec_planner", want: "[planner: x](#exec_planner)"},
		{refID: "exec_my planner", want: "[planner: x](<#exec_my planner>)"},
		{refID: "exec_odd(1)", want: "[planner: x](<#exec_odd(1)>)"},
	}

	for _, tc := range testCases {
		t.Run(tc.refID, func(t *testing.T) {
			tree := doctree.Section(tc.refID,
				doctree.Paragraph("", doctree.Reference("planner: x", tc.refID)),
			)
			out, err := NewMarkdownExporter().Export([]*doctree.Node{tree})
			require.NoError(t, err)
			assert.Contains(t, string(out), tc.want)
			assert.Contains(t, string(out), `<a id="`+tc.refID+`"></a>`, "the anchor id is kept as written")
		})
	}
}

func TestTermExporter_Styles(t *testing.T) {
	t.Run("empty style uses the default", func(t *testing.T) {
		e, err := NewTermExporter(60, "")
		require.NoError(t, err)
		out, err := e.Export([]*doctree.Node{sampleTree()})
		require.NoError(t, err)
		assert.Contains(t, string(out), "frequency")
	})

	t.Run("unknown style is rejected", func(t *testing.T) {
		_, err := NewTermExporter(60, "neon")
		require.Error(t, err)
	})
}
