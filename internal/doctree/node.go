// Package doctree is the abstract document tree produced by the renderer and
// consumed by exporters.
//
// The tree is format-free: a Node has a Kind, optional text, an
// optional section anchor (ID) or link target (RefID), and children. It mirrors
// the small subset of a docutils-style tree that the documentation needs
// (sections, titles, paragraphs, tables, field lists, bullet lists, inline
// references and literal blocks). Turning it into bytes is the job of
// internal/export.
package doctree

import "strings"

// Kind identifies the role of a node.
type Kind string

const (
	KindSection      Kind = "section"
	KindTitle        Kind = "title"
	KindSubtitle     Kind = "subtitle"
	KindParagraph    Kind = "paragraph"
	KindContainer    Kind = "container"
	KindTable        Kind = "table"
	KindRow          Kind = "row"
	KindEntry        Kind = "entry"
	KindFieldList    Kind = "field_list"
	KindField        Kind = "field"
	KindFieldName    Kind = "field_name"
	KindFieldBody    Kind = "field_body"
	KindBulletList   Kind = "bullet_list"
	KindListItem     Kind = "list_item"
	KindReference    Kind = "reference"
	KindInline       Kind = "inline"
	KindLiteralBlock Kind = "literal_block"
)

// Node is one element of the document tree.
type Node struct {
	Kind Kind `json:"kind"`
	// Text is the literal content of leaf nodes.
	Text string `json:"text,omitempty"`
	// ID is the anchor of a section.
	ID string `json:"id,omitempty"`
	// RefID is the anchor a reference points at.
	RefID string `json:"refid,omitempty"`
	// Columns is the column count of a table.
	Columns int `json:"columns,omitempty"`
	// Language tags a literal block, e.g. "yaml".
	Language string `json:"language,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every node of the given kind under n, including n itself,
// in document order.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node
	Walk(n, func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node of the given kind under n, or nil.
func (n *Node) Find(kind Kind) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// PlainText concatenates the text of n and all descendants.
func (n *Node) PlainText() string {
	var b strings.Builder
	Walk(n, func(c *Node) bool {
		b.WriteString(c.Text)
		return true
	})
	return b.String()
}
