package docgen

import "testing"

func TestItemPlainText(t *testing.T) {
	it := Item{
		Kind: ItemParagraph,
		Runs: []Run{
			{Text: "a ", Bold: true},
			{Text: "b", Italic: true},
			{Text: " c"},
		},
	}
	if got := it.PlainText(); got != "a b c" {
		t.Errorf("PlainText = %q, want %q", got, "a b c")
	}
}

func TestItemPlainTextEmpty(t *testing.T) {
	if got := (Item{Kind: ItemParagraph}).PlainText(); got != "" {
		t.Errorf("PlainText = %q, want empty", got)
	}
}
