package convert

import (
	"strings"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/docgen"
	"github.com/gerunddev/docbridge/internal/markdown"
)

// BlocksToItems maps parsed Markdown blocks onto the document item model:
// one paragraph or table per block, in order. Inline spans become runs
// with bold/italic flags; link spans become underlined runs carrying only
// the display text. Rule blocks become a paragraph of repeated rule
// glyphs. Table cells are flattened to plain text, header cells bold.
func BlocksToItems(blocks []markdown.Block, cfg *config.Config) []docgen.Item {
	items := make([]docgen.Item, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case markdown.KindTable:
			items = append(items, tableItem(b.Rows))
		case markdown.KindRule:
			items = append(items, docgen.Item{
				Kind:  docgen.ItemParagraph,
				Style: cfg.Styles.Normal,
				Runs:  []docgen.Run{{Text: strings.Repeat(cfg.RuleGlyph, cfg.RuleWidth)}},
			})
		default:
			items = append(items, docgen.Item{
				Kind:  docgen.ItemParagraph,
				Style: styleFor(b, cfg),
				Runs:  runsFrom(markdown.ScanInline(b.Text)),
			})
		}
	}
	return items
}

func styleFor(b markdown.Block, cfg *config.Config) string {
	switch b.Kind {
	case markdown.KindHeading:
		switch b.Level {
		case 0:
			return cfg.Styles.Title
		case 1:
			return cfg.Styles.Heading1
		case 2:
			return cfg.Styles.Heading2
		default:
			return cfg.Styles.Heading3
		}
	case markdown.KindBullet:
		if b.Nested {
			return cfg.Styles.ListBullet2
		}
		return cfg.Styles.ListBullet
	case markdown.KindNumbered:
		return cfg.Styles.ListNumber
	case markdown.KindQuote:
		return cfg.Styles.Quote
	}
	return cfg.Styles.Normal
}

func runsFrom(spans []markdown.Span) []docgen.Run {
	runs := make([]docgen.Run, 0, len(spans))
	for _, s := range spans {
		switch s.Kind {
		case markdown.SpanBold:
			runs = append(runs, docgen.Run{Text: s.Text, Bold: true})
		case markdown.SpanItalic:
			runs = append(runs, docgen.Run{Text: s.Text, Italic: true})
		case markdown.SpanLink:
			// The target URL is dropped; only the underlined display
			// text survives the forward direction.
			runs = append(runs, docgen.Run{Text: s.Text, Underline: true})
		default:
			runs = append(runs, docgen.Run{Text: s.Text})
		}
	}
	return runs
}

func tableItem(rows [][]string) docgen.Item {
	it := docgen.Item{Kind: docgen.ItemTable}
	for ri, row := range rows {
		cells := make([]docgen.Cell, 0, len(row))
		for _, text := range row {
			cells = append(cells, docgen.Cell{
				Text: markdown.Flatten(markdown.ScanInline(text)),
				Bold: ri == 0,
			})
		}
		it.Rows = append(it.Rows, cells)
	}
	return it
}

// ItemsToBlocks is the reverse projection: document items back into
// Markdown blocks. Paragraph styles choose the block kind; runs are
// re-wrapped in delimiter markup; a paragraph drawn entirely from rule
// characters becomes a Rule block; empty Normal paragraphs are dropped.
func ItemsToBlocks(items []docgen.Item, cfg *config.Config) []markdown.Block {
	var blocks []markdown.Block
	for _, it := range items {
		if it.Kind == docgen.ItemTable {
			blocks = append(blocks, markdown.Block{Kind: markdown.KindTable, Rows: textRows(it.Rows)})
			continue
		}

		text := markupFromRuns(it.Runs)
		plain := strings.TrimSpace(it.PlainText())

		switch it.Style {
		case cfg.Styles.Title:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindHeading, Level: 0, Text: plain})
		case cfg.Styles.Heading1:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindHeading, Level: 1, Text: plain})
		case cfg.Styles.Heading2:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindHeading, Level: 2, Text: plain})
		case cfg.Styles.Heading3:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindHeading, Level: 3, Text: plain})
		case cfg.Styles.ListBullet:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindBullet, Text: text})
		case cfg.Styles.ListBullet2:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindBullet, Nested: true, Text: text})
		case cfg.Styles.ListNumber:
			// Ordinal stays zero; the renderer recomputes it from a
			// running counter.
			blocks = append(blocks, markdown.Block{Kind: markdown.KindNumbered, Text: text})
		case cfg.Styles.Quote:
			blocks = append(blocks, markdown.Block{Kind: markdown.KindQuote, Text: text})
		default:
			if isRuleText(plain, cfg) {
				blocks = append(blocks, markdown.Block{Kind: markdown.KindRule})
			} else if text != "" {
				blocks = append(blocks, markdown.Block{Kind: markdown.KindParagraph, Text: text})
			}
		}
	}
	return blocks
}

// markupFromRuns re-wraps each run in its Markdown delimiters and
// concatenates the results with no inserted separators. Underlined runs
// were links on the way in and come back as plain text.
func markupFromRuns(runs []docgen.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		switch {
		case r.Bold && r.Italic:
			sb.WriteString("***" + r.Text + "***")
		case r.Bold:
			sb.WriteString("**" + r.Text + "**")
		case r.Italic:
			sb.WriteString("*" + r.Text + "*")
		default:
			sb.WriteString(r.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// isRuleText reports whether a paragraph visually represents a horizontal
// rule: at least RuleMinLength characters, all drawn from the rule set.
func isRuleText(plain string, cfg *config.Config) bool {
	runes := []rune(plain)
	if len(runes) < cfg.RuleMinLength {
		return false
	}
	for _, r := range runes {
		switch r {
		case '─', '-', '—':
		default:
			return false
		}
	}
	return true
}

func textRows(rows [][]docgen.Cell) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, c.Text)
		}
		out = append(out, cells)
	}
	return out
}
