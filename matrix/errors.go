// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (wrapped with context);
// tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates rows of unequal length passed to NewDenseFrom.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec with len(x) != Cols, or a non-square system matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf tags a kernel error with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
