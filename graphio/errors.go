// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a file with fewer lines than its format needs.
	ErrTruncated = errors.New("graphio: file truncated")

	// ErrParse indicates a malformed number or line.
	ErrParse = errors.New("graphio: parse error")

	// ErrNilInput indicates a nil graph or result handed to a writer.
	ErrNilInput = errors.New("graphio: nil input")

	// ErrUnrecognizedFile indicates a result file name outside the naming convention.
	ErrUnrecognizedFile = errors.New("graphio: unrecognized file")
)

// fileErrorf prefixes err with the offending file name.
func fileErrorf(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}

// lineErrorf reports a parse failure on a 1-based line number.
func lineErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, line, fmt.Sprintf(format, args...))
}
