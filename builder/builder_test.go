// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specpart/builder"
	"github.com/katalvlaran/specpart/csr"
)

// degrees returns the vertex count and the degree of every vertex.
func degrees(t *testing.T, m csr.AdjacencyModel) []int {
	t.Helper()
	sets, err := csr.NeighborSets(m)
	require.NoError(t, err)
	deg := make([]int, len(sets))
	for v, s := range sets {
		deg[v] = len(s)
	}
	return deg
}

func TestBuilders_Topology(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		deg  []int
	}{
		{"path", builder.Path(4), []int{1, 2, 2, 1}},
		{"single", builder.Path(1), []int{0}},
		{"cycle", builder.Cycle(4), []int{2, 2, 2, 2}},
		{"complete", builder.Complete(4), []int{3, 3, 3, 3}},
		{"star", builder.Star(4), []int{3, 1, 1, 1}},
		{"wheel", builder.Wheel(5), []int{4, 3, 3, 3, 3}},
		{"grid", builder.Grid(2, 3), []int{2, 3, 2, 2, 3, 2}},
		{"bipartite", builder.CompleteBipartite(2, 3), []int{3, 3, 2, 2, 2}},
		{"empty random", builder.RandomSparse(3, 0), []int{0, 0, 0}},
		{"full random", builder.RandomSparse(3, 1), []int{2, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.Build(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.deg, degrees(t, m))
		})
	}
}

func TestBuild_Composition(t *testing.T) {
	m, err := builder.Build(nil, builder.Complete(3), builder.Complete(3), builder.Edges(2, 3))
	require.NoError(t, err)

	sets, err := csr.NeighborSets(m)
	require.NoError(t, err)
	require.Len(t, sets, 6)
	assert.Equal(t, []int{0, 1, 3}, sets[2])
	assert.Equal(t, []int{2, 4, 5}, sets[3])

	L, err := csr.BuildLaplacian(m)
	require.NoError(t, err)
	assert.True(t, L.IsSymmetric(0))
	_, count := csr.Components(L)
	assert.Equal(t, 1, count)
}

func TestRandomSparse_Seeded(t *testing.T) {
	a, err := builder.Build([]builder.Option{builder.WithSeed(3)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithRand(rand.New(rand.NewSource(3)))}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a, b, "WithSeed(s) matches a source seeded with s")
	assert.Len(t, degrees(t, a), 40)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.Option
		con  builder.Constructor
		want error
	}{
		{"path", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"cycle", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"complete", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"star", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"grid", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"bipartite", nil, builder.CompleteBipartite(2, 0), builder.ErrTooFewVertices},
		{"probability", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"dangling edge", nil, builder.Edges(0, 1), builder.ErrVertexRange},
		{"odd edges", nil, builder.Edges(0), builder.ErrVertexRange},
		{"nil rand", []builder.Option{builder.WithRand(nil)}, builder.Path(2), builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Cycle(1)) })
	assert.NotPanics(t, func() { builder.MustBuild(nil, builder.Cycle(3)) })
}
