package commands

import (
	"fmt"
	"path/filepath"

	"github.com/gerunddev/docbridge/internal/diff"
	"github.com/gerunddev/docbridge/styles"
)

// Diff shows the drift between a Markdown file and a Word document's
// Markdown projection.
func Diff(args []string) {
	if len(args) < 2 {
		fail(fmt.Errorf("diff requires a markdown file and a document: docbridge diff <file.md> <file.docx>"))
	}
	mdPath, docxPath := args[0], args[1]
	cfg := loadConfig()

	out, err := diff.Generate(mdPath, docxPath, cfg)
	if err != nil {
		fail(err)
	}
	if out == "" {
		fmt.Println(styles.SuccessStyle.Render(
			fmt.Sprintf("In sync: %s matches %s", filepath.Base(mdPath), filepath.Base(docxPath))))
		return
	}
	fmt.Print(out)
}
