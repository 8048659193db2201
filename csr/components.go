// SPDX-License-Identifier: MIT

package csr

// Components labels the connected components of the structural graph of m
// (off-diagonal non-zeros) by breadth-first search.
//
// Returns comp with comp[i] in [0,count) and count itself. Components are
// numbered in order of their smallest vertex, so vertex 0 is always in
// component 0. Entries (i,j) are followed in the row direction only; on a
// symmetric matrix that is the undirected graph.
//
// Complexity: O(n + nnz) time, O(n) space.
func Components(m *Matrix) (comp []int, count int) {
	comp = make([]int, m.n)
	for i := range comp {
		comp[i] = -1
	}

	queue := make([]int, 0, m.n)
	var start, v, k, u int
	for start = 0; start < m.n; start++ {
		if comp[start] >= 0 {
			continue
		}
		comp[start] = count
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			v, queue = queue[0], queue[1:]
			for k = m.rowPtr[v]; k < m.rowPtr[v+1]; k++ {
				u = m.colInd[k]
				if u == v || m.values[k] == 0 || comp[u] >= 0 {
					continue
				}
				comp[u] = count
				queue = append(queue, u)
			}
		}
		count++
	}

	return comp, count
}
