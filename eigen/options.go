// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults.
const (
	// DefaultTolerance bounds the Ritz residual relative to the largest Ritz
	// magnitude of the projected matrix.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps outer (restart) iterations.
	DefaultMaxIterations = 10000

	// ncvFactor sets the default Krylov dimension ncv = min(ncvFactor·p, n).
	ncvFactor = 4
)

// Option configures a Solver. Invalid values are recorded and reported as
// ErrOptionViolation by NewSolver, Solve and SolveContext.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	// Tolerance is the relative residual bound; must be finite and > 0.
	Tolerance float64

	// MaxIterations caps restarts; must be > 0.
	MaxIterations int

	// NCV overrides the Krylov dimension; 0 selects min(4p, n).
	// It is clamped to n and must exceed p unless it equals n.
	NCV int

	// Seed feeds the default random source; 0 selects the default seed.
	Seed int64

	// Rand, when non-nil, is used instead of a source built from Seed.
	// It must not be shared with another goroutine while solving.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns tolerance 1e-10, 10000 iterations, automatic ncv
// and the default seed.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance %v", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the restart cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithNCV sets the Krylov subspace dimension.
func WithNCV(ncv int) Option {
	return func(o *Options) {
		if ncv <= 0 {
			o.err = fmt.Errorf("%w: ncv %d", ErrOptionViolation, ncv)
			return
		}
		o.NCV = ncv
	}
}

// WithSeed selects a deterministic random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
