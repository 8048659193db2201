// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid      = "Grid"
	methodBipartite = "CompleteBipartite"
	minGridDim      = 1
	minPartSize     = 1
)

// Grid appends a rows×cols 4-neighbour grid in row-major order: cell (r,c)
// is vertex base + r·cols + c, linked to its right and bottom neighbours.
func Grid(rows, cols int) Constructor {
	return func(m *model, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := m.grow(rows * cols)
		var nbrs []int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				nbrs = nbrs[:0]
				if c+1 < cols {
					nbrs = append(nbrs, base+r*cols+c+1)
				}
				if r+1 < rows {
					nbrs = append(nbrs, base+(r+1)*cols+c)
				}
				m.block(base+r*cols+c, nbrs...)
			}
		}

		return nil
	}
}

// CompleteBipartite appends K_{n1,n2}: the first n1 new vertices form the
// left side, the next n2 the right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(m *model, _ builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		base := m.grow(n1 + n2)
		right := make([]int, n2)
		for j := range right {
			right[j] = base + n1 + j
		}
		for i := 0; i < n1; i++ {
			m.block(base+i, right...)
		}
		for _, v := range right {
			m.block(v)
		}

		return nil
	}
}
