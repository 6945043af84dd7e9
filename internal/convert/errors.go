package convert

import "errors"

// Error kinds surfaced to the CLI. Each terminating failure wraps exactly
// one of these (or the underlying os error for plain IO failures), so
// callers can branch with errors.Is without a structured error type.
var (
	// ErrFileNotFound marks a missing input path.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedInput marks an input whose extension does not match
	// the expected format. Checked before the file is opened.
	ErrUnsupportedInput = errors.New("unsupported input format")

	// ErrCorruptFile marks a document package the authoring library
	// could not parse.
	ErrCorruptFile = errors.New("corrupt document")
)
