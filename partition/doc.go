// SPDX-License-Identifier: MIT

// Package partition splits an undirected graph into p parts of near-equal
// size with few cut edges, using the spectrum of its Laplacian.
//
// Pipeline (Partition):
//
//	AdjacencyModel ─► csr.BuildLaplacian ─► eigen.SolveContext(L, p)
//	               ─► FromEigen: p == 2 → Fiedler, p > 2 → spectral k-means
//	               ─► EdgesCut / Margin
//
// Fiedler bisection: vertex i goes to part 1 when the i-th component of the
// eigenvector of the second-smallest eigenvalue is negative, otherwise to
// part 2. Eigenvector signs are arbitrary up to a global flip; the solver
// fixes them deterministically for a given seed.
//
// Spectral k-means: vertex i is embedded at (v0[i], …, v_{p-1}[i]) and
// clustered with kmeans.Cluster. The near-constant v0 is part of the
// embedding by default; WithoutTrivialVector drops it.
//
// Quality:
//   - EdgesCut counts edges of the original adjacency whose endpoints differ.
//   - Margin is ((max-min)/min)·100 over part sizes, 0 if a part is empty.
//
// Partition is blocking and single-threaded; run it on a background worker
// when the caller must stay responsive. Each call owns its matrices and
// random source, so concurrent calls do not interact.
package partition
