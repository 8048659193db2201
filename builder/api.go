// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/specpart/csr"
)

// Constructor appends vertices and edges to the model under construction.
type Constructor func(m *model, cfg builderConfig) error

// model accumulates adjacency blocks and the vertex count.
type model struct {
	n   int
	adj csr.AdjacencyModel
}

// grow reserves k new vertices and returns the id of the first.
func (m *model) grow(k int) int {
	base := m.n
	m.n += k

	return base
}

// block appends the block [v nbrs...].
func (m *model) block(v int, nbrs ...int) {
	m.adj.Pointers = append(m.adj.Pointers, len(m.adj.List))
	m.adj.List = append(m.adj.List, v)
	m.adj.List = append(m.adj.List, nbrs...)
}

// Build resolves opts and applies cons in order.
//
// Errors: the first constructor error, wrapped with "Build"; ErrOptionViolation.
// An empty constructor list yields an empty model, which csr rejects.
func Build(opts []Option, cons ...Constructor) (csr.AdjacencyModel, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return csr.AdjacencyModel{}, fmt.Errorf("Build: %w", err)
	}
	m := &model{}
	for _, c := range cons {
		if err = c(m, cfg); err != nil {
			return csr.AdjacencyModel{}, fmt.Errorf("Build: %w", err)
		}
	}

	return m.adj, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) csr.AdjacencyModel {
	adj, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return adj
}
