// SPDX-License-Identifier: MIT

// Package specpart splits undirected graphs into p balanced parts with few
// cut edges, using the low end of the graph Laplacian spectrum.
//
// 🚀 What is specpart?
//
//	An in-memory spectral partitioner built from small packages:
//		• CSR storage: symmetric sparse matrices, Laplacian L = D - A
//		• Eigen: reverse-communication thick-restart Lanczos
//		• K-means: k-means++ seeding + Lloyd rounds, reproducible
//		• Partition: Fiedler bisection (p == 2), spectral k-means (p > 2)
//		• Quality: edges cut and size margin
//		• File I/O: .csrrg graphs, result and assignment files
//
// Under the hood:
//
//	csr/       Matrix, AdjacencyModel, BuildLaplacian, BuildAdjacency, Components
//	eigen/     Operator, Solver (Next/Feed/Result), Solve, SolveContext
//	kmeans/    Cluster with seeded k-means++
//	partition/ Partition, FromEigen, Fiedler, Margin, EdgesCut
//	graphio/   ReadGraph, WriteResult, WriteAssignments, Pair
//	config/    YAML run settings, validation, zap logger
//	builder/   deterministic graph fixtures for tests and benchmarks
//	cmd/specpart/  batch command-line tool
//
// Quick ASCII example:
//
//	    0───1       3───4
//	     \ /         \ /
//	      2─────────5
//
// Two triangles joined by the bridge 2-5: Partition(model, 2) puts {0,1,2}
// and {3,4,5} in different parts, cuts one edge and reports margin 0.00.
//
//	go install github.com/katalvlaran/specpart/cmd/specpart@latest
package specpart
