package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Options controls the source-layout thresholds the classifier depends on.
type Options struct {
	// NestedIndent is the leading-whitespace column count at which a
	// bullet is treated as nested. Tabs count as TabWidth columns.
	NestedIndent int
}

// TabWidth is the column width of a tab when measuring list indentation.
const TabWidth = 4

// DefaultNestedIndent marks a bullet as nested from two leading columns.
const DefaultNestedIndent = 2

func (o Options) withDefaults() Options {
	if o.NestedIndent <= 0 {
		o.NestedIndent = DefaultNestedIndent
	}
	return o
}

// tableSeparatorRe matches the header/body separator row of a table,
// e.g. `| --- | :--- |`. Matching lines are discarded, not parsed as rows.
var tableSeparatorRe = regexp.MustCompile(`^\|[\s\-:|]+\|$`)

// numberedRe matches a numbered list item and captures its ordinal.
var numberedRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Parse scans Markdown content line by line and produces an ordered block
// sequence. A line matching several prefixes is classified by the first
// match in priority order: headings, rule, table, list, quote, paragraph.
// Blank lines separate blocks and are never emitted themselves.
func Parse(content string, opts Options) []Block {
	opts = opts.withDefaults()

	var blocks []Block
	var table [][]string

	flushTable := func() {
		if len(table) > 0 {
			blocks = append(blocks, Block{Kind: KindTable, Rows: table})
			table = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushTable()
			continue
		}

		if level, text, ok := matchHeading(trimmed); ok {
			flushTable()
			blocks = append(blocks, Block{Kind: KindHeading, Level: level, Text: text})
			continue
		}

		if isRule(trimmed) {
			flushTable()
			blocks = append(blocks, Block{Kind: KindRule})
			continue
		}

		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") && len(trimmed) > 1 {
			if tableSeparatorRe.MatchString(trimmed) {
				continue
			}
			table = append(table, splitRow(trimmed))
			continue
		}
		flushTable()

		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			blocks = append(blocks, Block{
				Kind:   KindBullet,
				Nested: indentWidth(line) >= opts.NestedIndent,
				Text:   strings.TrimSpace(trimmed[2:]),
			})
			continue
		}

		if m := numberedRe.FindStringSubmatch(trimmed); m != nil {
			ordinal, _ := strconv.Atoi(m[1])
			blocks = append(blocks, Block{Kind: KindNumbered, Ordinal: ordinal, Text: m[2]})
			continue
		}

		if strings.HasPrefix(trimmed, "> ") {
			blocks = append(blocks, Block{Kind: KindQuote, Text: strings.TrimSpace(trimmed[2:])})
			continue
		}

		blocks = append(blocks, Block{Kind: KindParagraph, Text: trimmed})
	}
	flushTable()

	return blocks
}

// matchHeading classifies `# ` through `#### ` prefixes. A `# ` heading is
// level 0, the document title. Deeper prefixes fall through to paragraph.
func matchHeading(trimmed string) (int, string, bool) {
	hashes := 0
	for hashes < len(trimmed) && trimmed[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > 4 {
		return 0, "", false
	}
	if hashes >= len(trimmed) || trimmed[hashes] != ' ' {
		return 0, "", false
	}
	return hashes - 1, strings.TrimSpace(trimmed[hashes:]), true
}

// isRule reports whether the line is a horizontal rule: three or more
// repeats of the same rule character and nothing else.
func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	ch := trimmed[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

// splitRow splits `| a | b |` into its cell texts. Mismatched widths
// across rows are preserved as-is; the renderer never pads or truncates
// what the parser produced.
func splitRow(trimmed string) []string {
	parts := strings.Split(trimmed, "|")
	cells := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// indentWidth measures the leading whitespace of a raw line in columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += TabWidth
		default:
			return width
		}
	}
	return width
}
