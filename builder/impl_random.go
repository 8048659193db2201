// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	methodEdges             = "Edges"
	minRandomSparseVertices = 1
)

// RandomSparse appends an Erdős–Rényi graph G(n,p): each unordered pair is
// kept when rng.Float64() < p, visiting pairs (i<j) in ascending order.
// p == 0 and p == 1 need no random source.
func RandomSparse(n int, p float64) Constructor {
	return func(m *model, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := m.grow(n)
		var nbrs []int
		for i := 0; i < n; i++ {
			nbrs = nbrs[:0]
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					nbrs = append(nbrs, base+j)
				}
			}
			m.block(base+i, nbrs...)
		}

		return nil
	}
}

// Edges links existing vertices pairwise: Edges(a, b, c, d) adds a-b and
// c-d. It adds no vertices.
func Edges(pairs ...int) Constructor {
	return func(m *model, _ builderConfig) error {
		if len(pairs)%2 != 0 {
			return fmt.Errorf("%s: odd endpoint count %d: %w", methodEdges, len(pairs), ErrVertexRange)
		}
		for k := 0; k < len(pairs); k += 2 {
			u, v := pairs[k], pairs[k+1]
			if u < 0 || u >= m.n || v < 0 || v >= m.n {
				return fmt.Errorf("%s: %d-%d with %d vertices: %w", methodEdges, u, v, m.n, ErrVertexRange)
			}
			m.block(u, v)
		}

		return nil
	}
}
