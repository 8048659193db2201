// SPDX-License-Identifier: MIT

// Package builder composes deterministic graph fixtures as
// csr.AdjacencyModel values: paths, cycles, cliques, grids, stars, wheels,
// complete bipartite graphs and seeded random graphs, glued together with
// explicit bridge edges.
//
// Every constructor appends a fresh block of vertices numbered after those
// already present, so
//
//	builder.Build(nil, builder.Complete(4), builder.Complete(4), builder.Edges(3, 4))
//
// yields two K4 cliques {0..3} and {4..7} joined by the edge 3-4.
// Stochastic constructors need WithSeed or WithRand.
package builder
