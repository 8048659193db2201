// SPDX-License-Identifier: MIT

package csr

import (
	"math"
	"slices"
)

// MulVec computes dst = M·x.
//
// Contract: len(dst) == len(x) == n; dst and x must not overlap.
// Returns ErrLengthMismatch otherwise; dst is left untouched on error.
// Determinism: fixed row order and in-row storage order.
// Complexity: O(n + nnz).
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(dst) != m.n || len(x) != m.n {
		return csrErrorf(opMulVec, ErrLengthMismatch)
	}

	var i, k int
	var acc float64
	for i = 0; i < m.n; i++ {
		acc = 0
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			acc += m.values[k] * x[m.colInd[k]]
		}
		dst[i] = acc
	}

	return nil
}

// IsSymmetric reports whether |M[i,j] - M[j,i]| <= eps for every stored
// entry, treating absent entries as zero.
//
// Complexity: O(nnz · max row length).
func (m *Matrix) IsSymmetric(eps float64) bool {
	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			mirror, _ := m.At(m.colInd[k], i)
			if math.Abs(m.values[k]-mirror) > eps {
				return false
			}
		}
	}

	return true
}

// RowSums returns the sum of stored values of every row.
// For a Laplacian every entry is exactly zero.
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, m.n)
	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sums[i] += m.values[k]
		}
	}

	return sums
}

// Neighbors returns the sorted off-diagonal columns of row i that carry a
// non-zero value. Out-of-range i yields nil.
func (m *Matrix) Neighbors(i int) []int {
	cols, vals := m.Row(i)
	out := make([]int, 0, len(cols))
	for k, c := range cols {
		if c != i && vals[k] != 0 {
			out = append(out, c)
		}
	}
	slices.Sort(out)

	return out
}

// Edge is an undirected pair with U < V.
type Edge struct {
	U, V int
}

// Edges lists every off-diagonal structural pair once, as (u,v) with u < v,
// ordered by u then v. On a symmetric matrix this is the undirected edge set.
func (m *Matrix) Edges() []Edge {
	out := make([]Edge, 0, m.NNZ()/2)
	var u int
	for u = 0; u < m.n; u++ {
		for _, v := range m.Neighbors(u) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}
