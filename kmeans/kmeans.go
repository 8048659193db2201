// SPDX-License-Identifier: MIT

package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/specpart/internal/rng"
)

// Cluster partitions points into k clusters.
//
// Implementation:
//   - Stage 1: validate input, resolve options and the random source.
//   - Stage 2: k-means++ seeding (seed).
//   - Stage 3: Lloyd rounds until centroids settle or MaxRounds.
//
// Inputs:
//   - points: n points of equal dimension d >= 1. Not modified.
//   - k: number of clusters, 1 <= k <= n.
//
// Errors: ErrNoPoints, ErrBadK, ErrDimensionMismatch, ErrOptionViolation.
//
// Complexity: O(k·n·d) for seeding plus O(rounds·k·n·d).
func Cluster(points [][]float64, k int, opts ...Option) (*Result, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if k <= 0 || k > n {
		return nil, ErrBadK
	}
	d := len(points[0])
	if d == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	src := o.Rand
	if src == nil {
		src = rng.FromSeed(o.Seed)
	}

	centroids := seed(points, k, src)
	labels := make([]int, n)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, d)
	}
	counts := make([]int, k)

	res := &Result{Labels: labels, Centroids: centroids}
	var moved float64
	for res.Rounds < o.MaxRounds {
		res.Rounds++
		assign(points, centroids, labels)

		for c := range sums {
			for j := range sums[c] {
				sums[c][j] = 0
			}
			counts[c] = 0
		}
		for i, p := range points {
			floats.Add(sums[labels[i]], p)
			counts[labels[i]]++
		}

		moved = 0
		for c := range centroids {
			if counts[c] == 0 {
				copy(sums[c], points[src.Intn(n)])
			} else {
				floats.Scale(1/float64(counts[c]), sums[c])
			}
			if delta := maxAbsDiff(sums[c], centroids[c]); delta > moved {
				moved = delta
			}
			copy(centroids[c], sums[c])
		}
		if moved <= o.Epsilon {
			res.Converged = true
			break
		}
	}

	// Labels are those of the last assignment step, shifted to 1-based ids.
	for i := range labels {
		labels[i]++
	}

	return res, nil
}

// seed picks k initial centroids with k-means++ and returns copies of them.
func seed(points [][]float64, k int, src *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, append([]float64(nil), points[src.Intn(n)]...))

	dist := make([]float64, n)
	for i, p := range points {
		dist[i] = sqDist(p, centroids[0])
	}

	var (
		total, threshold, cum float64
		pick                  int
	)
	for len(centroids) < k {
		total = floats.Sum(dist)
		if total == 0 {
			pick = src.Intn(n)
		} else {
			threshold = src.Float64() * total
			cum = 0
			pick = -1
			for i, w := range dist {
				cum += w
				if cum > threshold {
					pick = i
					break
				}
			}
			if pick < 0 {
				// rounding left the threshold past the last cumulative step
				pick = lastPositive(dist)
			}
		}

		c := append([]float64(nil), points[pick]...)
		centroids = append(centroids, c)
		for i, p := range points {
			if dd := sqDist(p, c); dd < dist[i] {
				dist[i] = dd
			}
		}
	}

	return centroids
}

// assign writes the 0-based nearest centroid of every point into labels.
// Ties resolve to the lowest centroid index.
func assign(points, centroids [][]float64, labels []int) {
	var best, dd float64
	for i, p := range points {
		labels[i] = 0
		best = sqDist(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if dd = sqDist(p, centroids[c]); dd < best {
				best, labels[i] = dd, c
			}
		}
	}
}

// sqDist is the squared Euclidean distance; it orders points exactly as the
// Euclidean distance does.
func sqDist(a, b []float64) float64 {
	var s, t float64
	for i := range a {
		t = a[i] - b[i]
		s += t * t
	}

	return s
}

// maxAbsDiff is the largest per-coordinate |a[i]-b[i]|. Complexity: O(d).
func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}

// lastPositive returns the last index with a positive weight, so a sampling
// threshold lost to rounding still lands on an eligible point.
func lastPositive(w []float64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] > 0 {
			return i
		}
	}

	return len(w) - 1
}
