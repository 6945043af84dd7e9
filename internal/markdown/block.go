// Package markdown implements the line-oriented Markdown model used by
// docbridge: a tagged block variant per paragraph-level element, an inline
// span scanner for bold/italic/link markup, and a renderer producing
// Markdown lines back from blocks.
package markdown

// BlockKind identifies the variant of a parsed block.
type BlockKind int

const (
	// KindHeading is a `#`–`####` heading; level 0 is the document title.
	KindHeading BlockKind = iota
	// KindParagraph is any non-blank line matching no other prefix.
	KindParagraph
	// KindBullet is a `- ` or `* ` list item.
	KindBullet
	// KindNumbered is a `1. ` list item.
	KindNumbered
	// KindQuote is a `> ` blockquote line.
	KindQuote
	// KindRule is a horizontal rule (`---`, `***`, or `___`).
	KindRule
	// KindTable is a contiguous run of `|`-delimited rows.
	KindTable
)

// String returns the block kind name, for logging and test failures.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	case KindQuote:
		return "quote"
	case KindRule:
		return "rule"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Block is one parsed Markdown element. Exactly one of the payload fields
// is meaningful for a given kind: Level for headings, Ordinal and Nested
// for list items, Rows for tables, Text for everything line-shaped.
type Block struct {
	Kind    BlockKind
	Level   int        // heading level, 0..3; 0 is the document title
	Ordinal int        // numbered-item ordinal as written in the source
	Nested  bool       // bullet indented one level
	Text    string     // line text with inline markup intact
	Rows    [][]string // table rows; first row is the header
}

// SpanKind identifies the variant of an inline span.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanLink
)

// Span is a run of text within a block carrying uniform formatting.
type Span struct {
	Kind SpanKind
	Text string
	URL  string // link target, SpanLink only
}

// Flatten concatenates span texts, discarding all formatting.
func Flatten(spans []Span) string {
	var out []byte
	for _, s := range spans {
		out = append(out, s.Text...)
	}
	return string(out)
}
