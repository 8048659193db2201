// SPDX-License-Identifier: MIT

package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssign_TiesGoToLowestIndex(t *testing.T) {
	points := [][]float64{{1}, {0}, {2}}
	centroids := [][]float64{{0}, {2}}
	labels := make([]int, 3)
	assign(points, centroids, labels)
	assert.Equal(t, []int{0, 0, 1}, labels, "point 1.0 is equidistant")
}

// TestSeed_NeverPicksChosenPoint: after the first pick, points already used
// as centroids carry zero weight and cannot be drawn again.
func TestSeed_NeverPicksChosenPoint(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {0, 4}, {8, 8}, {-2, 1}}
	for s := int64(1); s <= 20; s++ {
		c := seed(points, len(points), rand.New(rand.NewSource(s)))
		seen := map[[2]float64]bool{}
		for _, p := range c {
			key := [2]float64{p[0], p[1]}
			assert.False(t, seen[key], "seed %d picked %v twice", s, p)
			seen[key] = true
		}
	}
}

func TestLastPositive(t *testing.T) {
	assert.Equal(t, 1, lastPositive([]float64{0, 2, 0}))
	assert.Equal(t, 2, lastPositive([]float64{0, 0, 0}))
}

func TestMaxAbsDiff(t *testing.T) {
	assert.Equal(t, 3.0, maxAbsDiff([]float64{1, -2, 0}, []float64{1, 1, 0.5}))
	assert.Equal(t, 0.0, maxAbsDiff(nil, nil))
}
