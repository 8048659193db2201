// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specpart/csr"
	"github.com/katalvlaran/specpart/partition"
)

// labelsWithSizes returns labels where part c+1 has sizes[c] members.
func labelsWithSizes(sizes ...int) []int {
	var labels []int
	for c, s := range sizes {
		for i := 0; i < s; i++ {
			labels = append(labels, c+1)
		}
	}
	return labels
}

func TestMargin(t *testing.T) {
	cases := []struct {
		name   string
		labels []int
		p      int
		want   float64
	}{
		{"balanced", labelsWithSizes(5, 5, 5), 3, 0},
		{"3-5-7", labelsWithSizes(3, 5, 7), 3, (7.0 - 3.0) / 3.0 * 100},
		{"empty part", labelsWithSizes(4, 0, 2), 3, 0},
		{"out of range ignored", append(labelsWithSizes(2, 2), 0, 3, -1), 2, 0},
		{"no parts", []int{1, 1}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, partition.Margin(tc.labels, tc.p), 1e-9)
		})
	}
	assert.InDelta(t, 133.33, partition.Margin(labelsWithSizes(3, 5, 7), 3), 0.01)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, []int{3, 5, 7}, partition.Sizes(labelsWithSizes(3, 5, 7), 3))
	assert.Equal(t, []int{1, 0}, partition.Sizes([]int{1, 5}, 2))
	assert.Nil(t, partition.Sizes([]int{1}, 0))
}

func TestEdgesCut(t *testing.T) {
	A, err := csr.BuildAdjacency(triangle())
	require.NoError(t, err)
	L, err := csr.BuildLaplacian(triangle())
	require.NoError(t, err)

	assert.Equal(t, 0, partition.EdgesCut(A, []int{1, 1, 1}))
	assert.Equal(t, 2, partition.EdgesCut(A, []int{1, 1, 2}), "each undirected edge once")
	assert.Equal(t, 3, partition.EdgesCut(A, []int{1, 2, 3}))
	assert.Equal(t, 2, partition.EdgesCut(L, []int{2, 1, 1}), "diagonal ignored")
}

func TestFiedler(t *testing.T) {
	assert.Equal(t, []int{1, 2, 2, 1}, partition.Fiedler([]float64{-0.3, 0.1, 0, -1e-20}))
	assert.Empty(t, partition.Fiedler(nil))
}
