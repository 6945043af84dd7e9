// Package commands implements the CLI command handlers. Each handler
// owns its argument parsing, prints styled output, and exits non-zero on
// failure; the conversion logic itself lives in internal/convert.
package commands

import "github.com/gerunddev/docbridge/internal/convert"

// MD2Docx handles `docbridge md2docx <file.md>`.
func MD2Docx(args []string) {
	parsed, err := parseConvertArgs(args, ".docx")
	if err != nil {
		fail(err)
	}

	cfg := loadConfig()
	log := newLogger(parsed.verbose)

	if err := convert.MarkdownToDocx(parsed.input, parsed.output, cfg, log); err != nil {
		log.ConversionError(parsed.input, parsed.output, err)
		fail(err)
	}
	confirm(parsed.input, parsed.output)
}

// Docx2MD handles `docbridge docx2md <file.docx>`.
func Docx2MD(args []string) {
	parsed, err := parseConvertArgs(args, ".md")
	if err != nil {
		fail(err)
	}

	cfg := loadConfig()
	log := newLogger(parsed.verbose)

	if err := convert.DocxToMarkdown(parsed.input, parsed.output, cfg, log); err != nil {
		log.ConversionError(parsed.input, parsed.output, err)
		fail(err)
	}
	confirm(parsed.input, parsed.output)
}
