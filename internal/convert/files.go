// Package convert implements the two transcoders: Markdown files into
// Word documents and back. The mapping layer is symmetric and pure; the
// file-level operations around it validate the input, run one full
// in-memory transform, and write the output atomically so a failure
// never leaves a partial file behind.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/docgen"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/markdown"
)

// MarkdownToDocx converts a Markdown file to a Word document at outPath,
// overwriting any existing file there. Validation and reading happen
// before any output is created.
func MarkdownToDocx(inPath, outPath string, cfg *config.Config, log *logger.Logger) error {
	start := time.Now()

	if ext := strings.ToLower(filepath.Ext(inPath)); ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: %s is not a Markdown file", ErrUnsupportedInput, inPath)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, inPath)
		}
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	log.ConversionStarted(inPath, outPath)

	title, body := extractFrontMatter(string(data))
	blocks := markdown.Parse(body, markdown.Options{NestedIndent: cfg.NestedIndent})
	if title != "" {
		log.FrontMatter(title)
		if len(blocks) == 0 || blocks[0].Kind != markdown.KindHeading || blocks[0].Level != 0 {
			blocks = append([]markdown.Block{{Kind: markdown.KindHeading, Text: title}}, blocks...)
		}
	}

	items := BlocksToItems(blocks, cfg)
	err = writeAtomic(outPath, func(w io.Writer) error {
		return docgen.Render(items, w)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.ConversionCompleted(inPath, outPath, len(blocks), time.Since(start))
	return nil
}

// DocxToMarkdown converts a Word document to a Markdown file at outPath,
// overwriting any existing file there.
func DocxToMarkdown(inPath, outPath string, cfg *config.Config, log *logger.Logger) error {
	start := time.Now()

	if ext := strings.ToLower(filepath.Ext(inPath)); ext != ".docx" {
		return fmt.Errorf("%w: %s is not a Word document", ErrUnsupportedInput, inPath)
	}
	if _, err := os.Stat(inPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, inPath)
		}
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	log.ConversionStarted(inPath, outPath)

	blocks, err := ReadDocx(inPath, cfg)
	if err != nil {
		return err
	}

	lines := markdown.Render(blocks)
	err = writeAtomic(outPath, func(w io.Writer) error {
		_, werr := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return werr
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.ConversionCompleted(inPath, outPath, len(blocks), time.Since(start))
	return nil
}

// ReadDocx loads a document and projects it into Markdown blocks without
// writing anything. The preview and diff surfaces share this path.
func ReadDocx(inPath string, cfg *config.Config) ([]markdown.Block, error) {
	items, err := docgen.Read(inPath)
	if err != nil {
		var perr *os.PathError
		if errors.As(err, &perr) {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inPath)
			}
			return nil, fmt.Errorf("reading %s: %w", inPath, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptFile, inPath, err)
	}
	return ItemsToBlocks(items, cfg), nil
}

// writeAtomic emits into a temp file next to path and renames it into
// place, so an emit failure leaves no partial output at path.
func writeAtomic(path string, emit func(io.Writer) error) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
