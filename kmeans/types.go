// SPDX-License-Identifier: MIT

package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrNoPoints is returned for an empty point set.
	ErrNoPoints = errors.New("kmeans: no points")

	// ErrBadK is returned when k <= 0 or k > len(points).
	ErrBadK = errors.New("kmeans: k out of range")

	// ErrDimensionMismatch is returned for ragged or zero-dimensional points.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmeans: invalid option supplied")
)

// Defaults.
const (
	// DefaultMaxRounds caps Lloyd rounds.
	DefaultMaxRounds = 100

	// DefaultEpsilon is the largest per-coordinate centroid displacement that
	// still counts as "unchanged".
	DefaultEpsilon = 1e-12
)

// Result is the outcome of one clustering run.
type Result struct {
	// Labels holds the 1-based cluster of every point.
	Labels []int

	// Centroids holds the final k centroids; Centroids[c] is cluster c+1.
	Centroids [][]float64

	// Rounds is the number of Lloyd rounds performed.
	Rounds int

	// Converged reports whether the centroids settled before MaxRounds.
	Converged bool
}

// Option configures Cluster.
type Option func(*Options)

// Options holds the effective clustering configuration.
type Options struct {
	MaxRounds int
	Epsilon   float64
	Seed      int64
	Rand      *rand.Rand

	err error
}

// DefaultOptions returns 100 rounds, epsilon 1e-12 and the default seed.
func DefaultOptions() Options {
	return Options{MaxRounds: DefaultMaxRounds, Epsilon: DefaultEpsilon}
}

// WithMaxRounds sets the Lloyd round cap (> 0).
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max rounds %d", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithEpsilon sets the convergence threshold on centroid displacement.
// Zero demands exact equality between consecutive rounds.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithSeed selects a deterministic random stream (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned random source. It is advanced by Cluster
// and must not be used concurrently.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}
