// SPDX-License-Identifier: MIT

package eigen

import (
	"context"
	"fmt"
)

// Solve drives a Solver to completion against op and returns the nev
// smallest-magnitude eigenpairs. See SolveContext.
func Solve(op Operator, nev int, opts ...Option) (*Result, error) {
	return SolveContext(context.Background(), op, nev, opts...)
}

// SolveContext is Solve with a cancellation check before every product.
// A cancelled ctx aborts with ctx.Err() wrapped; no partial result is
// returned.
//
// Errors (wrapped with "Solve"): ErrInvalidArgument for a nil operator,
// everything NewSolver and Feed report, op.MulVec failures and ctx.Err().
func SolveContext(ctx context.Context, op Operator, nev int, opts ...Option) (*Result, error) {
	if op == nil {
		return nil, eigenErrorf(opSolve, fmt.Errorf("%w: nil operator", ErrInvalidArgument))
	}
	s, err := NewSolver(op.Dim(), nev, opts...)
	if err != nil {
		return nil, eigenErrorf(opSolve, err)
	}

	y := make([]float64, op.Dim())
	for {
		if err = ctx.Err(); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		req, err := s.Next()
		if err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		if req.Op == OpDone {
			return s.Result()
		}
		if err = op.MulVec(y, req.X); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		if err = s.Feed(y); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
	}
}
