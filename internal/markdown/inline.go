package markdown

import "strings"

// ScanInline splits a line's text into ordered, non-overlapping spans.
// The cursor moves left to right trying a link pattern first, then bold,
// then italic; a delimiter with no closing pair is literal text. Nesting
// is not supported: the first match wins and its inner text stays plain.
func ScanInline(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == '[' {
			if sp, next, ok := matchLink(text, i); ok {
				flush()
				spans = append(spans, sp)
				i = next
				continue
			}
		}
		if strings.HasPrefix(text[i:], "**") {
			if end := strings.Index(text[i+2:], "**"); end > 0 {
				flush()
				spans = append(spans, Span{Kind: SpanBold, Text: text[i+2 : i+2+end]})
				i += end + 4
				continue
			}
		}
		if text[i] == '*' {
			if end := strings.IndexByte(text[i+1:], '*'); end > 0 {
				flush()
				spans = append(spans, Span{Kind: SpanItalic, Text: text[i+1 : i+1+end]})
				i += end + 2
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()
	return spans
}

// matchLink tries to match [text](url) at start. Both the display text
// and the target must be non-empty.
func matchLink(s string, start int) (Span, int, bool) {
	closeBracket := strings.IndexByte(s[start:], ']')
	if closeBracket < 0 {
		return Span{}, 0, false
	}
	closeBracket += start
	if closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return Span{}, 0, false
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen < 0 {
		return Span{}, 0, false
	}
	closeParen += closeBracket + 2

	display := s[start+1 : closeBracket]
	target := s[closeBracket+2 : closeParen]
	if display == "" || target == "" {
		return Span{}, 0, false
	}
	return Span{Kind: SpanLink, Text: display, URL: target}, closeParen + 1, true
}
