// Package export turns rendered document trees into bytes.
//
// Four formats are supported:
//
//	exporter, err := export.New("markdown", export.Options{})
//	out, err := exporter.Export(trees)
//
//   - markdown: headings, <a id> anchors, pipe tables, nested bullets
//   - html: a standalone page built with html/template
//   - json: the node tree itself
//   - term: markdown rendered for the terminal with glamour
package export
