// SPDX-License-Identifier: MIT

package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specpart/kmeans"
)

func blobs() [][]float64 {
	return [][]float64{
		{0.0, 0.0}, {0.2, 0.1}, {0.1, 0.3}, // near origin
		{10.0, 10.0}, {10.2, 9.9}, {9.8, 10.1}, // near (10,10)
		{-10.0, 5.0}, {-9.9, 5.2}, // near (-10,5)
	}
}

func TestCluster_SeparatedBlobs(t *testing.T) {
	res, err := kmeans.Cluster(blobs(), 3, kmeans.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, res.Labels, 8)
	require.Len(t, res.Centroids, 3)
	assert.True(t, res.Converged)

	l := res.Labels
	assert.Equal(t, l[0], l[1])
	assert.Equal(t, l[0], l[2])
	assert.Equal(t, l[3], l[4])
	assert.Equal(t, l[3], l[5])
	assert.Equal(t, l[6], l[7])
	assert.NotEqual(t, l[0], l[3])
	assert.NotEqual(t, l[0], l[6])
	assert.NotEqual(t, l[3], l[6])
}

func TestCluster_LabelsInRange(t *testing.T) {
	src := rand.New(rand.NewSource(11))
	points := make([][]float64, 50)
	for i := range points {
		points[i] = []float64{src.NormFloat64(), src.NormFloat64(), src.NormFloat64()}
	}
	for _, k := range []int{1, 2, 5, 50} {
		res, err := kmeans.Cluster(points, k, kmeans.WithRand(rand.New(rand.NewSource(int64(k)))))
		require.NoError(t, err)
		require.Len(t, res.Labels, len(points))
		for i, l := range res.Labels {
			assert.GreaterOrEqual(t, l, 1, "point %d", i)
			assert.LessOrEqual(t, l, k, "point %d", i)
		}
	}
}

// TestCluster_OnePointPerCluster is the k == n degenerate case: every point
// becomes its own centroid and the first round already settles.
func TestCluster_OnePointPerCluster(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}}
	res, err := kmeans.Cluster(points, 4)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Rounds)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, res.Labels)
}

// TestCluster_IdenticalPoints forces empty clusters on every round; they are
// reseeded instead of failing.
func TestCluster_IdenticalPoints(t *testing.T) {
	points := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	res, err := kmeans.Cluster(points, 3, kmeans.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, []int{1, 1, 1, 1}, res.Labels, "ties go to the lowest centroid")
}

func TestCluster_Reproducible(t *testing.T) {
	a, err := kmeans.Cluster(blobs(), 3, kmeans.WithSeed(99))
	require.NoError(t, err)
	b, err := kmeans.Cluster(blobs(), 3, kmeans.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCluster_RoundCapIsNotAnError(t *testing.T) {
	res, err := kmeans.Cluster(blobs(), 2, kmeans.WithMaxRounds(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rounds)
	assert.Len(t, res.Labels, 8)
}

func TestCluster_Errors(t *testing.T) {
	_, err := kmeans.Cluster(nil, 1)
	require.ErrorIs(t, err, kmeans.ErrNoPoints)

	_, err = kmeans.Cluster(blobs(), 0)
	require.ErrorIs(t, err, kmeans.ErrBadK)
	_, err = kmeans.Cluster(blobs(), 9)
	require.ErrorIs(t, err, kmeans.ErrBadK)

	_, err = kmeans.Cluster([][]float64{{1, 2}, {3}}, 1)
	require.ErrorIs(t, err, kmeans.ErrDimensionMismatch)
	_, err = kmeans.Cluster([][]float64{{}, {}}, 1)
	require.ErrorIs(t, err, kmeans.ErrDimensionMismatch)

	for _, opt := range []kmeans.Option{
		kmeans.WithMaxRounds(0),
		kmeans.WithEpsilon(-1),
		kmeans.WithRand(nil),
	} {
		_, err = kmeans.Cluster(blobs(), 2, opt)
		require.ErrorIs(t, err, kmeans.ErrOptionViolation)
	}
}
