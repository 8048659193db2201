// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"slices"
)

// AdjacencyModel is the raw, possibly one-directional adjacency of a graph.
//
// List is split into blocks by Pointers: block b covers
// List[Pointers[b]:Pointers[b+1]] and the last block runs to the end of List.
// The first entry of a block is the vertex id, the rest are its neighbor ids.
// Empty blocks are ignored.
type AdjacencyModel struct {
	List     []int
	Pointers []int
}

// NeighborSets returns the undirected closure of model: for every listed
// pair (v,u) with v != u, u is added to v's set and v to u's. Sets are sorted
// and free of duplicates; index i of the result is vertex i, and the length
// is max(id)+1.
//
// Ids must lie in [0, len(List)+len(Pointers)): a larger id would stand for
// more vertices than the model can mention.
//
// Errors (wrapped with "NeighborSets"):
//   - ErrEmptyModel   List or Pointers empty.
//   - ErrOutOfRange   id outside the range above or a pointer outside [0,len(List)].
//   - ErrBadPointers  decreasing pointers.
func NeighborSets(model AdjacencyModel) ([][]int, error) {
	sets, err := closure(model)
	if err != nil {
		return nil, csrErrorf(opNeighbors, err)
	}

	return sets, nil
}

// BuildLaplacian builds L = D - A over the undirected closure of model.
//
// Implementation:
//   - Stage 1: symmetric closure (closure), self references dropped.
//   - Stage 2: for ascending vertex i emit (i,i,deg(i)) then (i,u,-1) for
//     every neighbor u in ascending order.
//
// Behavior highlights:
//   - Row sums are exactly zero; the result is symmetric.
//   - Isolated vertices get a single explicit 0 diagonal entry.
//
// Errors: see NeighborSets; wrapped with "BuildLaplacian".
//
// Complexity: O(L log L) for L = len(List), O(n + nnz) output.
func BuildLaplacian(model AdjacencyModel) (*Matrix, error) {
	sets, err := closure(model)
	if err != nil {
		return nil, csrErrorf(opLaplacian, err)
	}

	n := len(sets)
	nnz := n
	for _, s := range sets {
		nnz += len(s)
	}
	rowPtr := make([]int, n+1)
	colInd := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)

	for i, nbrs := range sets {
		colInd = append(colInd, i)
		values = append(values, float64(len(nbrs)))
		for _, u := range nbrs {
			colInd = append(colInd, u)
			values = append(values, -1)
		}
		rowPtr[i+1] = len(colInd)
	}

	return &Matrix{n: n, rowPtr: rowPtr, colInd: colInd, values: values}, nil
}

// BuildAdjacency builds the unit-weight adjacency matrix A of the undirected
// closure of model, without diagonal entries.
//
// Errors: see NeighborSets; wrapped with "BuildAdjacency".
func BuildAdjacency(model AdjacencyModel) (*Matrix, error) {
	sets, err := closure(model)
	if err != nil {
		return nil, csrErrorf(opAdjacency, err)
	}

	n := len(sets)
	rowPtr := make([]int, n+1)
	colInd := make([]int, 0)
	values := make([]float64, 0)
	for i, nbrs := range sets {
		for _, u := range nbrs {
			colInd = append(colInd, u)
			values = append(values, 1)
		}
		rowPtr[i+1] = len(colInd)
	}

	return &Matrix{n: n, rowPtr: rowPtr, colInd: colInd, values: values}, nil
}

// closure validates model and returns sorted, deduplicated neighbor sets.
func closure(model AdjacencyModel) ([][]int, error) {
	if len(model.List) == 0 || len(model.Pointers) == 0 {
		return nil, ErrEmptyModel
	}

	var (
		b, lo, hi, k int
		maxID        = -1
		size         = len(model.List)
	)
	// Pass 1: bounds and the vertex count.
	for b, lo = range model.Pointers {
		if lo < 0 || lo > size {
			return nil, fmt.Errorf("pointer %d = %d: %w", b, lo, ErrOutOfRange)
		}
		if b > 0 && lo < model.Pointers[b-1] {
			return nil, fmt.Errorf("pointer %d: %w", b, ErrBadPointers)
		}
	}
	limit := size + len(model.Pointers)
	for k = range model.List {
		if model.List[k] < 0 || model.List[k] >= limit {
			return nil, fmt.Errorf("list[%d] = %d outside [0,%d): %w", k, model.List[k], limit, ErrOutOfRange)
		}
		if model.List[k] > maxID {
			maxID = model.List[k]
		}
	}

	// Pass 2: symmetric closure.
	sets := make([][]int, maxID+1)
	var v, u int
	for b, lo = range model.Pointers {
		hi = size
		if b+1 < len(model.Pointers) {
			hi = model.Pointers[b+1]
		}
		if hi <= lo {
			continue
		}
		v = model.List[lo]
		for k = lo + 1; k < hi; k++ {
			u = model.List[k]
			if u == v {
				continue
			}
			sets[v] = append(sets[v], u)
			sets[u] = append(sets[u], v)
		}
	}
	for v = range sets {
		slices.Sort(sets[v])
		sets[v] = slices.Compact(sets[v])
	}

	return sets, nil
}
