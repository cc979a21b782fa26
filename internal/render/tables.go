package render

import (
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/model"
)

// ParameterTable renders the two-row table of a parameter or argument. Missing
// values are replaced by model.Placeholder.
func ParameterTable(p *model.Parameter) *doctree.Node {
	return doctree.Table(
		doctree.Row("Type", "Default", "Description"),
		doctree.Row(
			model.OrPlaceholder(p.Type),
			model.OrPlaceholder(p.Default),
			model.OrPlaceholder(p.Description),
		),
	)
}

// InterfaceTable renders the header row followed by the rows of the
// interface variant.
func InterfaceTable(iface model.Interface) *doctree.Node {
	rows := []*doctree.Node{doctree.Row("", "Type", "Description")}
	for _, r := range iface.Rows() {
		rows = append(rows, doctree.Row(r.Label, r.Type, r.Description))
	}
	return doctree.Table(rows...)
}
