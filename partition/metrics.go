// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/specpart/csr"

// Sizes counts the members of parts 1..p; labels outside [1,p] are ignored.
// sizes[c-1] is the size of part c.
func Sizes(labels []int, p int) []int {
	if p <= 0 {
		return nil
	}
	sizes := make([]int, p)
	for _, l := range labels {
		if l >= 1 && l <= p {
			sizes[l-1]++
		}
	}

	return sizes
}

// Margin returns ((max-min)/min)·100 over the sizes of parts 1..p, or 0 when
// the smallest part is empty or p <= 0.
func Margin(labels []int, p int) float64 {
	sizes := Sizes(labels, p)
	if len(sizes) == 0 {
		return 0
	}
	lo, hi := sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if lo == 0 {
		return 0
	}

	return float64(hi-lo) / float64(lo) * 100
}

// EdgesCut counts the undirected edges of adj whose endpoints carry
// different labels. Each edge is counted once; the diagonal is ignored, so a
// Laplacian works as well as an adjacency matrix. Vertices without a label
// (index >= len(labels)) are skipped.
func EdgesCut(adj *csr.Matrix, labels []int) int {
	cut := 0
	for _, e := range adj.Edges() {
		if e.V >= len(labels) {
			continue
		}
		if labels[e.U] != labels[e.V] {
			cut++
		}
	}

	return cut
}
