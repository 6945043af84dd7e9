package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/markdown"
)

// Preview renders a Markdown file, or a Word document's Markdown
// projection, to the terminal.
func Preview(args []string) {
	if len(args) == 0 {
		fail(fmt.Errorf("no input file specified"))
	}
	input := args[0]
	cfg := loadConfig()

	var content string
	switch strings.ToLower(filepath.Ext(input)) {
	case ".md", ".markdown":
		data, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				fail(fmt.Errorf("%w: %s", convert.ErrFileNotFound, input))
			}
			fail(err)
		}
		content = string(data)
	case ".docx":
		blocks, err := convert.ReadDocx(input, cfg)
		if err != nil {
			fail(err)
		}
		content = strings.Join(markdown.Render(blocks), "\n")
	default:
		fail(fmt.Errorf("%w: %s", convert.ErrUnsupportedInput, input))
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to the raw markdown if glamour fails
		fmt.Println(content)
		return
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(rendered)
}
