package markdown

import (
	"fmt"
	"strings"
)

// Render produces Markdown lines from an ordered block sequence. Blocks
// are separated by a blank line, except consecutive list items and quote
// lines, which stay contiguous. Numbered-item ordinals are recomputed
// sequentially from 1; the counter resets whenever the list run ends.
func Render(blocks []Block) []string {
	var lines []string
	counter := 0

	for i, b := range blocks {
		if i > 0 && !contiguous(blocks[i-1], b) {
			lines = append(lines, "")
		}
		if b.Kind != KindNumbered {
			counter = 0
		}

		switch b.Kind {
		case KindHeading:
			lines = append(lines, strings.Repeat("#", b.Level+1)+" "+b.Text)
		case KindParagraph:
			lines = append(lines, b.Text)
		case KindBullet:
			if b.Nested {
				lines = append(lines, "  - "+b.Text)
			} else {
				lines = append(lines, "- "+b.Text)
			}
		case KindNumbered:
			counter++
			lines = append(lines, fmt.Sprintf("%d. %s", counter, b.Text))
		case KindQuote:
			lines = append(lines, "> "+b.Text)
		case KindRule:
			lines = append(lines, "---")
		case KindTable:
			lines = append(lines, renderTable(b.Rows)...)
		}
	}
	return lines
}

// contiguous reports whether two adjacent blocks belong to the same run
// and should not be separated by a blank line.
func contiguous(prev, cur Block) bool {
	if prev.Kind != cur.Kind {
		return false
	}
	switch cur.Kind {
	case KindBullet, KindNumbered, KindQuote:
		return true
	}
	return false
}

// renderTable emits the header row, a dash separator with one cell per
// header column, then the body rows. Short body rows are padded with
// empty cells so every emitted line has the header's column count.
func renderTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	out := []string{
		"| " + strings.Join(header, " | ") + " |",
	}
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	out = append(out, "| "+strings.Join(seps, " | ")+" |")

	for _, row := range rows[1:] {
		for len(row) < len(header) {
			row = append(row, "")
		}
		out = append(out, "| "+strings.Join(row, " | ")+" |")
	}
	return out
}
