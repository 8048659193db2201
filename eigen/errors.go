// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a bad size, eigenpair count or vector length.
	ErrInvalidArgument = errors.New("eigen: invalid argument")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("eigen: invalid option supplied")

	// ErrProtocol indicates Next/Feed were called out of order.
	ErrProtocol = errors.New("eigen: reverse-communication protocol violation")

	// ErrNotConverged indicates the iteration cap was reached before every
	// requested Ritz pair met the tolerance.
	ErrNotConverged = errors.New("eigen: iteration did not converge")

	// ErrComputation indicates an internal numerical failure.
	ErrComputation = errors.New("eigen: numerical failure")
)

const (
	opNewSolver = "NewSolver"
	opFeed      = "Feed"
	opSolve     = "Solve"
)

// eigenErrorf wraps err as "op: err".
func eigenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
