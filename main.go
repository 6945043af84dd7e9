package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/docbridge/internal/commands"
	"github.com/gerunddev/docbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "md2docx", "m2d":
		commands.MD2Docx(os.Args[2:])
	case "docx2md", "d2m":
		commands.Docx2MD(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("docbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`docbridge - Convert between Markdown and Word documents

Usage:
  docbridge <command> [options]

Commands:
  md2docx, m2d    Convert a Markdown file to a Word document
  docx2md, d2m    Convert a Word document to a Markdown file
  preview         Render a file's Markdown in the terminal
  diff            Show drift between a Markdown file and a document
  version         Show version information
  help            Show this help message

Options:
  --out, -o       Output path (default: input with swapped extension)
  --verbose, -v   Verbose logging

Examples:
  docbridge md2docx notes/report.md
  docbridge docx2md notes/report.docx --out notes/report-back.md
  docbridge preview notes/report.docx
  docbridge diff notes/report.md notes/report.docx

Configuration:
  Config file: %s

For more information, visit: https://github.com/gerunddev/docbridge
`, config.ConfigPath())
	fmt.Print(usage)
}
