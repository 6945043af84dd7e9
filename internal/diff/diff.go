// Package diff renders the drift between a Markdown file and a Word
// document's Markdown projection, for checking whether a document is
// still in sync with the source it was generated from.
package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/markdown"
)

// Generate computes a unified diff between the Markdown file and the
// document's projection, rendered for the terminal. An empty string
// means the two are in sync.
func Generate(mdPath, docxPath string, cfg *config.Config) (string, error) {
	mdContent, err := os.ReadFile(mdPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", convert.ErrFileNotFound, mdPath)
		}
		return "", fmt.Errorf("reading %s: %w", mdPath, err)
	}

	blocks, err := convert.ReadDocx(docxPath, cfg)
	if err != nil {
		return "", err
	}
	projected := strings.Join(markdown.Render(blocks), "\n") + "\n"

	edits := myers.ComputeEdits(span.URIFromPath(mdPath), string(mdContent), projected)
	unified := fmt.Sprint(gotextdiff.ToUnified(
		filepath.Base(mdPath), filepath.Base(docxPath), string(mdContent), edits))
	if unified == "" {
		return "", nil
	}

	// Wrap in a markdown diff code fence and render with Glamour
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown, nil
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}
	return rendered, nil
}
