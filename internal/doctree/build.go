package doctree

// Section returns a section anchored at id.
func Section(id string, children ...*Node) *Node {
	return &Node{Kind: KindSection, ID: id, Children: children}
}

// Title returns a section title.
func Title(text string) *Node {
	return &Node{Kind: KindTitle, Text: text}
}

// Subtitle returns a sub-heading inside a section.
func Subtitle(text string) *Node {
	return &Node{Kind: KindSubtitle, Text: text}
}

// Paragraph returns a paragraph. With no text it acts as a wrapper for its
// children.
func Paragraph(text string, children ...*Node) *Node {
	return &Node{Kind: KindParagraph, Text: text, Children: children}
}

// Container groups nodes without adding meaning of its own.
func Container(children ...*Node) *Node {
	return &Node{Kind: KindContainer, Children: children}
}

// Table returns a table with the given rows. The column count is taken from
// the widest row.
func Table(rows ...*Node) *Node {
	cols := 0
	for _, r := range rows {
		if len(r.Children) > cols {
			cols = len(r.Children)
		}
	}
	return &Node{Kind: KindTable, Columns: cols, Children: rows}
}

// Row returns a table row with one entry per cell.
func Row(cells ...string) *Node {
	row := &Node{Kind: KindRow}
	for _, c := range cells {
		row.Children = append(row.Children, &Node{Kind: KindEntry, Children: []*Node{Paragraph(c)}})
	}
	return row
}

// FieldList returns a definition-style list of fields.
func FieldList(fields ...*Node) *Node {
	return &Node{Kind: KindFieldList, Children: fields}
}

// Field pairs a name with a body.
func Field(name string, body ...*Node) *Node {
	return &Node{
		Kind: KindField,
		Children: []*Node{
			{Kind: KindFieldName, Text: name},
			{Kind: KindFieldBody, Children: body},
		},
	}
}

// BulletList returns an unordered list.
func BulletList(items ...*Node) *Node {
	return &Node{Kind: KindBulletList, Children: items}
}

// ListItem returns a list item.
func ListItem(children ...*Node) *Node {
	return &Node{Kind: KindListItem, Children: children}
}

// Reference returns a link with the given text pointing at refID.
func Reference(text, refID string) *Node {
	return &Node{Kind: KindReference, Text: text, RefID: refID}
}

// Inline wraps inline content.
func Inline(children ...*Node) *Node {
	return &Node{Kind: KindInline, Children: children}
}

// LiteralBlock returns preformatted text.
func LiteralBlock(language, text string) *Node {
	return &Node{Kind: KindLiteralBlock, Language: language, Text: text}
}
