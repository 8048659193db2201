// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor run without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrVertexRange indicates an Edges endpoint that does not exist yet.
	ErrVertexRange = errors.New("builder: vertex out of range")

	// ErrOptionViolation indicates a meaningless option value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
