package markdown

import (
	"reflect"
	"testing"
)

func TestRenderBlockSeparation(t *testing.T) {
	blocks := []Block{
		{Kind: KindHeading, Level: 0, Text: "Title"},
		{Kind: KindParagraph, Text: "intro"},
		{Kind: KindBullet, Text: "one"},
		{Kind: KindBullet, Nested: true, Text: "one point five"},
		{Kind: KindQuote, Text: "said"},
		{Kind: KindRule},
	}

	expected := []string{
		"# Title",
		"",
		"intro",
		"",
		"- one",
		"  - one point five",
		"",
		"> said",
		"",
		"---",
	}

	actual := Render(blocks)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Render = %q, want %q", actual, expected)
	}
}

func TestRenderNumberedListRenumbering(t *testing.T) {
	// Source ordinals are ignored; each list run counts from 1 and the
	// counter resets when the run is interrupted.
	blocks := []Block{
		{Kind: KindNumbered, Ordinal: 4, Text: "a"},
		{Kind: KindNumbered, Ordinal: 9, Text: "b"},
		{Kind: KindParagraph, Text: "break"},
		{Kind: KindNumbered, Ordinal: 2, Text: "c"},
	}

	expected := []string{
		"1. a",
		"2. b",
		"",
		"break",
		"",
		"1. c",
	}

	actual := Render(blocks)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Render = %q, want %q", actual, expected)
	}
}

func TestRenderTable(t *testing.T) {
	blocks := []Block{
		{Kind: KindTable, Rows: [][]string{{"A", "B"}, {"1", "2"}, {"3"}}},
	}

	expected := []string{
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 |",
		"| 3 |  |",
	}

	actual := Render(blocks)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Render = %q, want %q", actual, expected)
	}
}

func TestRenderHeadingLevels(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{0, "# t"},
		{1, "## t"},
		{2, "### t"},
		{3, "#### t"},
	}

	for _, tt := range tests {
		actual := Render([]Block{{Kind: KindHeading, Level: tt.level, Text: "t"}})
		if len(actual) != 1 || actual[0] != tt.expected {
			t.Errorf("level %d: Render = %q, want %q", tt.level, actual, []string{tt.expected})
		}
	}
}
