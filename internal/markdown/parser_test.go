package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "title heading",
			input:    "# Title",
			expected: []Block{{Kind: KindHeading, Level: 0, Text: "Title"}},
		},
		{
			name:  "heading levels",
			input: "## One\n### Two\n#### Three",
			expected: []Block{
				{Kind: KindHeading, Level: 1, Text: "One"},
				{Kind: KindHeading, Level: 2, Text: "Two"},
				{Kind: KindHeading, Level: 3, Text: "Three"},
			},
		},
		{
			name:     "five hashes is a paragraph",
			input:    "##### Too deep",
			expected: []Block{{Kind: KindParagraph, Text: "##### Too deep"}},
		},
		{
			name:     "hash without space is a paragraph",
			input:    "#hashtag",
			expected: []Block{{Kind: KindParagraph, Text: "#hashtag"}},
		},
		{
			name:  "rules of all three characters",
			input: "---\n*****\n___",
			expected: []Block{
				{Kind: KindRule},
				{Kind: KindRule},
				{Kind: KindRule},
			},
		},
		{
			name:     "two dashes is a paragraph",
			input:    "--",
			expected: []Block{{Kind: KindParagraph, Text: "--"}},
		},
		{
			name:  "bullet markers",
			input: "- dash item\n* star item",
			expected: []Block{
				{Kind: KindBullet, Text: "dash item"},
				{Kind: KindBullet, Text: "star item"},
			},
		},
		{
			name:  "nested bullet by indentation",
			input: "- top\n  - nested",
			expected: []Block{
				{Kind: KindBullet, Text: "top"},
				{Kind: KindBullet, Nested: true, Text: "nested"},
			},
		},
		{
			name:  "numbered items keep source ordinals",
			input: "3. third\n7. seventh",
			expected: []Block{
				{Kind: KindNumbered, Ordinal: 3, Text: "third"},
				{Kind: KindNumbered, Ordinal: 7, Text: "seventh"},
			},
		},
		{
			name:     "quote",
			input:    "> quoted words",
			expected: []Block{{Kind: KindQuote, Text: "quoted words"}},
		},
		{
			name:  "table with separator discarded",
			input: "| A | B |\n| --- | --- |\n| 1 | 2 |",
			expected: []Block{
				{Kind: KindTable, Rows: [][]string{{"A", "B"}, {"1", "2"}}},
			},
		},
		{
			name:  "malformed table rows pass through",
			input: "| A | B |\n| 1 | 2 | 3 |",
			expected: []Block{
				{Kind: KindTable, Rows: [][]string{{"A", "B"}, {"1", "2", "3"}}},
			},
		},
		{
			name:  "blank line ends a table",
			input: "| A |\n\n| B |",
			expected: []Block{
				{Kind: KindTable, Rows: [][]string{{"A"}}},
				{Kind: KindTable, Rows: [][]string{{"B"}}},
			},
		},
		{
			name:     "blank lines are separators only",
			input:    "\n\nfirst\n\n\nsecond\n\n",
			expected: []Block{{Kind: KindParagraph, Text: "first"}, {Kind: KindParagraph, Text: "second"}},
		},
		{
			name:  "heading wins over bullet lookalike",
			input: "# - not a bullet",
			expected: []Block{
				{Kind: KindHeading, Level: 0, Text: "- not a bullet"},
			},
		},
		{
			name:     "rule wins over star bullet",
			input:    "***",
			expected: []Block{{Kind: KindRule}},
		},
		{
			name:     "inline markup stays intact in block text",
			input:    "- item with **bold** text",
			expected: []Block{{Kind: KindBullet, Text: "item with **bold** text"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Parse(tt.input, Options{})
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestParseNestedIndentThreshold(t *testing.T) {
	// The nesting threshold is configurable; with a wider setting the
	// two-space bullet stays top-level, and a tab always clears it.
	input := "  - two spaces\n\t- one tab"

	blocks := Parse(input, Options{NestedIndent: 4})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Nested {
		t.Errorf("two-space bullet should not be nested at threshold 4")
	}
	if !blocks[1].Nested {
		t.Errorf("tab-indented bullet should be nested at threshold 4")
	}
}

func TestParseTableCellSplitting(t *testing.T) {
	blocks := Parse("| padded | cells here |", Options{})
	if len(blocks) != 1 || blocks[0].Kind != KindTable {
		t.Fatalf("expected one table block, got %+v", blocks)
	}
	want := [][]string{{"padded", "cells here"}}
	if !reflect.DeepEqual(blocks[0].Rows, want) {
		t.Errorf("Rows = %+v, want %+v", blocks[0].Rows, want)
	}
}

func TestParseDocumentOrder(t *testing.T) {
	input := strings.Join([]string{
		"# Title",
		"",
		"intro",
		"",
		"| A |",
		"| 1 |",
		"",
		"outro",
	}, "\n")

	kinds := []BlockKind{KindHeading, KindParagraph, KindTable, KindParagraph}
	blocks := Parse(input, Options{})
	if len(blocks) != len(kinds) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(kinds), len(blocks), blocks)
	}
	for i, k := range kinds {
		if blocks[i].Kind != k {
			t.Errorf("block %d: kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}
}
