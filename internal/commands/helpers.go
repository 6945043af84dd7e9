package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/styles"
)

// convertArgs is the parsed surface shared by the conversion commands:
// one positional input path, an optional --out override, --verbose.
type convertArgs struct {
	input   string
	output  string
	verbose bool
}

// parseConvertArgs parses command arguments; the default output path is
// the input with its extension swapped for outExt.
func parseConvertArgs(args []string, outExt string) (convertArgs, error) {
	var parsed convertArgs
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%s requires a path", args[i])
			}
			i++
			parsed.output = args[i]
		case "--verbose", "-v":
			parsed.verbose = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return parsed, fmt.Errorf("unknown flag: %s", args[i])
			}
			if parsed.input != "" {
				return parsed, fmt.Errorf("unexpected argument: %s", args[i])
			}
			parsed.input = args[i]
		}
	}
	if parsed.input == "" {
		return parsed, fmt.Errorf("no input file specified")
	}
	if parsed.output == "" {
		parsed.output = strings.TrimSuffix(parsed.input, filepath.Ext(parsed.input)) + outExt
	}
	return parsed, nil
}

// loadConfig loads the user config, falling back to defaults with a
// warning when the file is unusable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render(
			fmt.Sprintf("Warning: %v (using defaults)", err)))
		return config.DefaultConfig()
	}
	return cfg
}

func newLogger(verbose bool) *logger.Logger {
	if verbose {
		return logger.NewWithLevel(os.Stderr, log.DebugLevel)
	}
	return logger.NewWithLevel(os.Stderr, log.WarnLevel)
}

// fail prints a styled error and exits non-zero. Usage hints are added
// for the error kinds a user can act on directly.
func fail(err error) {
	msg := "Error: " + err.Error()
	if errors.Is(err, convert.ErrUnsupportedInput) {
		msg += "\nRun 'docbridge help' for the expected input formats."
	}
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(msg))
	os.Exit(1)
}

// confirm prints the one-line success message naming both file names.
func confirm(inPath, outPath string) {
	fmt.Println(styles.SuccessStyle.Render(
		fmt.Sprintf("Converted: %s -> %s", filepath.Base(inPath), filepath.Base(outPath))))
}
