// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"math"
)

// Matrix is an immutable square matrix in compressed sparse row form.
//
// Row i owns the entries colInd[rowPtr[i]:rowPtr[i+1]] and the matching
// values. Ordering inside a row is free; duplicates inside a row are not.
// The zero value is not usable; construct with New or one of the builders.
type Matrix struct {
	n      int
	rowPtr []int
	colInd []int
	values []float64
}

// New validates and wraps the given CSR arrays. The slices are copied, so the
// caller may reuse them afterwards.
//
// Errors (wrapped with "New"):
//   - ErrBadShape        n <= 0.
//   - ErrRowPointers     len(rowPtr) != n+1, rowPtr[0] != 0, decreasing, or last != len(colInd).
//   - ErrLengthMismatch  len(colInd) != len(values).
//   - ErrOutOfRange      a column outside [0,n).
//   - ErrDuplicateEntry  a column repeated inside a row.
//   - ErrNaNInf          a non-finite value.
//
// Complexity: O(n + nnz) time, O(n + nnz) space.
func New(n int, rowPtr, colInd []int, values []float64) (*Matrix, error) {
	if err := validate(n, rowPtr, colInd, values); err != nil {
		return nil, csrErrorf(opNew, err)
	}

	return &Matrix{
		n:      n,
		rowPtr: append([]int(nil), rowPtr...),
		colInd: append([]int(nil), colInd...),
		values: append([]float64(nil), values...),
	}, nil
}

// validate checks every structural invariant of a CSR triple.
func validate(n int, rowPtr, colInd []int, values []float64) error {
	if n <= 0 {
		return ErrBadShape
	}
	if len(rowPtr) != n+1 || rowPtr[0] != 0 || rowPtr[n] != len(colInd) {
		return ErrRowPointers
	}
	if len(colInd) != len(values) {
		return ErrLengthMismatch
	}

	var i, k, c int
	for i = 0; i < n; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return ErrRowPointers
		}
	}

	seen := make([]int, n) // seen[c] == i+1 when column c already met in row i
	for i = 0; i < n; i++ {
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			c = colInd[k]
			if c < 0 || c >= n {
				return fmt.Errorf("row %d col %d: %w", i, c, ErrOutOfRange)
			}
			if seen[c] == i+1 {
				return fmt.Errorf("row %d col %d: %w", i, c, ErrDuplicateEntry)
			}
			seen[c] = i + 1
			if math.IsNaN(values[k]) || math.IsInf(values[k], 0) {
				return fmt.Errorf("row %d col %d: %w", i, c, ErrNaNInf)
			}
		}
	}

	return nil
}

// Size returns n, the number of rows (and columns).
func (m *Matrix) Size() int { return m.n }

// Dim returns n. Together with MulVec it makes *Matrix an eigen.Operator.
func (m *Matrix) Dim() int { return m.n }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.colInd) }

// RowPtr returns a copy of the row pointer array.
func (m *Matrix) RowPtr() []int { return append([]int(nil), m.rowPtr...) }

// ColInd returns a copy of the column index array.
func (m *Matrix) ColInd() []int { return append([]int(nil), m.colInd...) }

// Values returns a copy of the value array.
func (m *Matrix) Values() []float64 { return append([]float64(nil), m.values...) }

// Row returns the column indices and values of row i. The returned slices
// alias internal storage and must not be modified.
// Out-of-range i yields (nil, nil).
func (m *Matrix) Row(i int) ([]int, []float64) {
	if i < 0 || i >= m.n {
		return nil, nil
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colInd[lo:hi:hi], m.values[lo:hi:hi]
}

// At returns entry (i,j); absent entries are 0.
// Returns ErrOutOfRange when i or j is outside [0,n).
//
// Complexity: O(row length).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colInd[k] == j {
			return m.values[k], nil
		}
	}

	return 0, nil
}
