// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random sources for the solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across runs and platforms.
//   - No ambient state: every caller owns its *rand.Rand; nothing here is global.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines;
//     use Derive to create independent streams for restarts or workers.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mix folds a parent seed and a stream id into a new seed with a
// SplitMix64-style finalizer, so neighbouring stream ids decorrelate.
func mix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent stream from base and a stream id.
// base == nil uses DefaultSeed as the parent; otherwise base.Int63() is
// consumed once so repeated derivations with the same id still differ.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mix(parent, stream)))
}
