// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/specpart/internal/rng"
)

// builderConfig is the resolved, immutable option set handed to constructors.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand
}

// Option configures Build.
type Option func(*builderConfig) error

// WithSeed makes stochastic constructors reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) error {
		c.rng = rng.FromSeed(seed)
		return nil
	}
}

// WithRand hands stochastic constructors a caller-owned source.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) error {
		if r == nil {
			return fmt.Errorf("%w: nil rand", ErrOptionViolation)
		}
		c.rng = r
		return nil
	}
}

// newBuilderConfig applies opts in order; the first option error wins.
func newBuilderConfig(opts ...Option) (builderConfig, error) {
	var cfg builderConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return builderConfig{}, err
		}
	}

	return cfg, nil
}
