// SPDX-License-Identifier: MIT

package csr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "csr:"; callers match with
// errors.Is, builders wrap with an operation tag via csrErrorf.
var (
	// ErrBadShape is returned when n <= 0.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrRowPointers indicates rowPtr has the wrong length, does not start at 0,
	// decreases, or does not end at len(colInd).
	ErrRowPointers = errors.New("csr: malformed row pointers")

	// ErrLengthMismatch indicates len(colInd) != len(values) or a vector
	// argument whose length differs from the matrix size.
	ErrLengthMismatch = errors.New("csr: length mismatch")

	// ErrOutOfRange indicates a column index, vertex id or block pointer
	// outside its valid range.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrDuplicateEntry indicates the same column appears twice in one row.
	ErrDuplicateEntry = errors.New("csr: duplicate entry in row")

	// ErrNaNInf indicates a non-finite stored value.
	ErrNaNInf = errors.New("csr: NaN or Inf value")

	// ErrEmptyModel indicates an adjacency model with no list or no pointers.
	ErrEmptyModel = errors.New("csr: empty adjacency model")

	// ErrBadPointers indicates adjacency block pointers that decrease.
	ErrBadPointers = errors.New("csr: adjacency pointers not non-decreasing")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opLaplacian = "BuildLaplacian"
	opAdjacency = "BuildAdjacency"
	opNeighbors = "NeighborSets"
	opMulVec    = "MulVec"
)

// csrErrorf wraps err as "<op>: <err>", keeping it matchable with errors.Is.
// err must be non-nil.
func csrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
