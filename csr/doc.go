// SPDX-License-Identifier: MIT

// Package csr provides an immutable compressed-sparse-row matrix and the
// builders that turn a raw adjacency model into the matrices used by
// spectral partitioning.
//
// What is inside:
//
//   - Matrix          CSR storage (size, row pointers, column indices, values)
//     with O(nnz) matrix-vector products, row access and symmetry checks.
//   - AdjacencyModel  the flattened "vertex id followed by neighbor ids"
//     block layout used by .csrrg graph files.
//   - BuildLaplacian  L = D - A of the undirected closure of a model.
//   - BuildAdjacency  A itself (unit weights, no diagonal).
//   - NeighborSets    the undirected neighbor sets, for round-trip checks.
//   - Components      connected components by breadth-first search.
//
// Determinism:
//
//	Builders emit vertices in ascending id order and, within a row, the
//	diagonal first followed by neighbors in ascending order. Two builds of
//	the same model are bit-identical.
//
// Example (triangle 0-1-2):
//
//	model := csr.AdjacencyModel{
//		List:     []int{0, 1, 2, 1, 2, 2, 0},
//		Pointers: []int{0, 3, 5},
//	}
//	L, err := csr.BuildLaplacian(model)
//	// L.Row(0) => cols [0 1 2], vals [2 -1 -1]
//
// Matrix satisfies eigen.Operator, so a Laplacian can be handed straight to
// the eigensolver driver.
package csr
