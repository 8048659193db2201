// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/specpart/eigen"
	"github.com/katalvlaran/specpart/kmeans"
)

// Option configures Partition and FromEigen.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	// MaxMargin is the accepted size imbalance in percent; < 0 disables the check.
	MaxMargin float64

	// Restarts is the number of k-means runs for p > 2; the best is kept.
	Restarts int

	// Seed drives every random choice of the run (0 ⇒ default seed).
	Seed int64

	// SkipTrivial drops eigenvector 0 from the k-means embedding.
	SkipTrivial bool

	EigenOptions  []eigen.Option
	KMeansOptions []kmeans.Option

	Logger *zap.Logger
	Ctx    context.Context

	err error
}

// DefaultOptions: no margin check, one k-means run, default seed, full
// embedding, no-op logger, background context.
func DefaultOptions() Options {
	return Options{
		MaxMargin: -1,
		Restarts:  1,
		Logger:    zap.NewNop(),
		Ctx:       context.Background(),
	}
}

// WithMaxMargin sets the accepted imbalance in percent. A result above it is
// still returned, with WithinMargin == false and a warning logged.
func WithMaxMargin(pct float64) Option {
	return func(o *Options) {
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
			o.err = fmt.Errorf("%w: margin %v", ErrOptionViolation, pct)
			return
		}
		o.MaxMargin = pct
	}
}

// WithRestarts sets how many independent k-means runs are tried for p > 2.
func WithRestarts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: restarts %d", ErrOptionViolation, n)
			return
		}
		o.Restarts = n
	}
}

// WithSeed seeds the eigensolver start vector and the k-means streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithoutTrivialVector embeds vertices with eigenvectors 1..p-1 only.
func WithoutTrivialVector() Option {
	return func(o *Options) { o.SkipTrivial = true }
}

// WithEigenOptions forwards options to the eigensolver. They are applied
// after the seed derived from WithSeed, so they may override it.
func WithEigenOptions(opts ...eigen.Option) Option {
	return func(o *Options) { o.EigenOptions = append(o.EigenOptions, opts...) }
}

// WithKMeansOptions forwards options to every k-means run. A WithRand or
// WithSeed here overrides the per-restart streams.
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(o *Options) { o.KMeansOptions = append(o.KMeansOptions, opts...) }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets a context checked between solver products and k-means
// restarts; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// gatherOptions applies opts over the defaults and surfaces the first
// recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
