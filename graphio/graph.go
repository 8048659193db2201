// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/specpart/csr"
)

const graphLines = 5

// Graph is the content of a .csrrg file. Only Adjacency and
// AdjacencyPointers feed the partitioner; the row layout is carried through
// to the result file unchanged.
type Graph struct {
	MaxVerticesPerRow int
	RowPositions      []int
	RowStartIndices   []int
	Adjacency         []int
	AdjacencyPointers []int
}

// Model returns the adjacency blocks as a csr.AdjacencyModel. The slices are
// shared with g.
func (g *Graph) Model() csr.AdjacencyModel {
	return csr.AdjacencyModel{List: g.Adjacency, Pointers: g.AdjacencyPointers}
}

// ReadGraph parses a five-line graph file.
//
// Errors:
//   - ErrTruncated  fewer than five lines.
//   - ErrParse      a malformed integer; the message names the line.
//   - any error from r.
func ReadGraph(r io.Reader) (*Graph, error) {
	lines, err := readLines(r, graphLines)
	if err != nil {
		return nil, err
	}

	g := &Graph{}
	if g.MaxVerticesPerRow, err = parseInt(lines[0], 1); err != nil {
		return nil, err
	}
	targets := []*[]int{&g.RowPositions, &g.RowStartIndices, &g.Adjacency, &g.AdjacencyPointers}
	for i, dst := range targets {
		if *dst, err = parseList(lines[i+1], i+2); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteGraph writes g in the five-line graph format.
func WriteGraph(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrNilInput
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(g.MaxVerticesPerRow))
	bw.WriteByte('\n')
	writeList(bw, g.RowPositions)
	writeList(bw, g.RowStartIndices)
	writeList(bw, g.Adjacency)
	writeList(bw, g.AdjacencyPointers)

	return bw.Flush()
}
