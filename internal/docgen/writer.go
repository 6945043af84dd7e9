package docgen

import (
	"io"

	"github.com/fumiama/go-docx"
)

// tableWidth is the fixed twips width handed to the library for new
// tables; columns share it evenly.
const tableWidth = 8640

// Render builds a fresh document from the items, one paragraph or table
// per item in order, and serializes the package to w.
func Render(items []Item, w io.Writer) error {
	doc := docx.New().WithDefaultTheme()

	for _, it := range items {
		switch it.Kind {
		case ItemParagraph:
			renderParagraph(doc, it)
		case ItemTable:
			renderTable(doc, it)
		}
	}

	_, err := doc.WriteTo(w)
	return err
}

func renderParagraph(doc *docx.Docx, it Item) {
	p := doc.AddParagraph()
	if it.Style != "" && it.Style != "Normal" {
		p.Style(it.Style)
	}
	for _, r := range it.Runs {
		run := p.AddText(r.Text)
		if r.Bold {
			run.Bold()
		}
		if r.Italic {
			run.Italic()
		}
		if r.Underline {
			run.Underline("single")
		}
	}
}

func renderTable(doc *docx.Docx, it Item) {
	rows := len(it.Rows)
	cols := 0
	for _, row := range it.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if rows == 0 || cols == 0 {
		return
	}

	tbl := doc.AddTable(rows, cols, tableWidth, nil)
	for ri, row := range it.Rows {
		for ci, cell := range row {
			if ri >= len(tbl.TableRows) || ci >= len(tbl.TableRows[ri].TableCells) {
				continue
			}
			run := tbl.TableRows[ri].TableCells[ci].AddParagraph().AddText(cell.Text)
			if cell.Bold {
				run.Bold()
			}
		}
	}
}
