// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/katalvlaran/specpart/builder"
	"github.com/katalvlaran/specpart/csr"
	"github.com/katalvlaran/specpart/partition"
)

// BenchmarkPartition measures the whole pipeline on grids and sparse random
// graphs of growing size.
func BenchmarkPartition(b *testing.B) {
	cases := []struct {
		name  string
		model csr.AdjacencyModel
		parts int
	}{
		{"Grid20x20/p2", builder.MustBuild(nil, builder.Grid(20, 20)), 2},
		{"Grid20x20/p4", builder.MustBuild(nil, builder.Grid(20, 20)), 4},
		{"Random500/p3", builder.MustBuild([]builder.Option{builder.WithSeed(42)}, builder.RandomSparse(500, 0.02)), 3},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := partition.Partition(tc.model, tc.parts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
