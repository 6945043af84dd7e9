package docgen

import (
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Read loads a .docx package and projects its body into items, walking
// paragraphs and tables interleaved in document order. Open and stat
// failures come back as *os.PathError; anything the library rejects
// after that is a malformed package.
func Read(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, body := range doc.Document.Body.Items {
		switch v := body.(type) {
		case *docx.Paragraph:
			items = append(items, paragraphItem(v))
		case *docx.Table:
			items = append(items, tableItem(v))
		}
	}
	return items, nil
}

func paragraphItem(p *docx.Paragraph) Item {
	it := Item{Kind: ItemParagraph, Style: "Normal"}
	if p.Properties != nil && p.Properties.Style != nil {
		it.Style = p.Properties.Style.Val
	}
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			it.Runs = append(it.Runs, runFrom(c))
		case *docx.Hyperlink:
			// Link targets are not carried back; the display run is
			// kept as underlined text.
			r := runFrom(&c.Run)
			r.Underline = true
			it.Runs = append(it.Runs, r)
		}
	}
	return it
}

func runFrom(r *docx.Run) Run {
	var out Run
	for _, child := range r.Children {
		if t, ok := child.(*docx.Text); ok {
			out.Text += t.Text
		}
	}
	if rp := r.RunProperties; rp != nil {
		out.Bold = rp.Bold != nil
		out.Italic = rp.Italic != nil
		out.Underline = rp.Underline != nil
	}
	return out
}

func tableItem(t *docx.Table) Item {
	it := Item{Kind: ItemTable}
	for _, row := range t.TableRows {
		var cells []Cell
		for _, tc := range row.TableCells {
			cells = append(cells, cellFrom(tc))
		}
		it.Rows = append(it.Rows, cells)
	}
	return it
}

// cellFrom joins a cell's non-empty paragraph texts with single spaces.
// The cell counts as bold when any of its runs is.
func cellFrom(tc *docx.WTableCell) Cell {
	var texts []string
	bold := false
	for _, p := range tc.Paragraphs {
		pi := paragraphItem(p)
		for _, r := range pi.Runs {
			bold = bold || r.Bold
		}
		if s := strings.TrimSpace(pi.PlainText()); s != "" {
			texts = append(texts, s)
		}
	}
	return Cell{Text: strings.Join(texts, " "), Bold: bold}
}
