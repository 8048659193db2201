// SPDX-License-Identifier: MIT

// Package graphio reads and writes the text files exchanged with the
// partitioner: .csrrg graphs, partition results and cluster-assignment side
// files, plus the naming convention pairing them.
//
// Graph file (.csrrg), five lines:
//
//	<maxVerticesPerRow>
//	<rowPositions, ';'-separated>
//	<rowStartIndices, ';'-separated>
//	<adjacency list, ';'-separated; each block = vertex id, then neighbor ids>
//	<adjacency block pointers, ';'-separated>
//
// Result file, four lines:
//
//	<numParts> <edgesCut> <margin with two decimals>
//	<maxVerticesPerRow>
//	<rowPositions>
//	<rowStartIndices>
//
// Assignment file, one line per vertex:
//
//	<vertex> => <clusterId>
//
// Naming: wynik.csrrg / wynik.bin pair with graf.csrrg and przypisania.txt;
// "wynik (N).csrrg" / "wynik (N).bin" pair with grafN.csrrg and
// "przypisania (N).txt". The binary layout itself is not handled here.
package graphio
