// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a bad part count or mismatched inputs,
	// rejected before any computation starts.
	ErrInvalidArgument = errors.New("partition: invalid argument")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("partition: invalid option supplied")
)

const (
	opPartition = "Partition"
	opFromEigen = "FromEigen"
	opLaplacian = "Laplacian"
	opEigen     = "Eigen"
	opKMeans    = "KMeans"
)

// partitionErrorf wraps err as "op: err".
func partitionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
