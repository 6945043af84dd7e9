// Package docgen is the only package that touches the Word-document
// authoring library. It exposes a deliberately narrow surface: a neutral
// Item model for a document's ordered paragraphs and tables, a writer
// that renders items into a .docx package, and a reader that projects a
// loaded package back into items. Everything above this package works in
// terms of Items and paragraph style names.
package docgen

// ItemKind distinguishes the two top-level document elements.
type ItemKind int

const (
	ItemParagraph ItemKind = iota
	ItemTable
)

// Run is the smallest styled text unit within a paragraph.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// Cell is one table cell: its joined paragraph text and whether its runs
// are bold (header rows are written bold).
type Cell struct {
	Text string
	Bold bool
}

// Item is one paragraph or table in document order.
type Item struct {
	Kind  ItemKind
	Style string   // paragraph style name, ItemParagraph only
	Runs  []Run    // ItemParagraph only
	Rows  [][]Cell // ItemTable only
}

// PlainText concatenates the item's run texts without formatting.
func (it Item) PlainText() string {
	var out []byte
	for _, r := range it.Runs {
		out = append(out, r.Text...)
	}
	return string(out)
}
