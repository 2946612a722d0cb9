// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go — sentinel error set for the matrix package. Every public
// operation that can fail returns one of these, wrapped with call-site
// context via fmt.Errorf("...: %w", ...); callers branch with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks an operation this storage kind never
	// supports: transpose, matrix multiply, slice-assignment from
	// another matrix, and non-diagonal counting outside 2-D.
	ErrNotImplemented = errors.New("matrix: not implemented")

	// ErrTypeError indicates an assignment of a value that cannot be
	// converted to the storage's scalar type.
	ErrTypeError = errors.New("matrix: type error")

	// ErrDimensionMismatch indicates incompatible shapes between two
	// storages in Eq or MapMerged. Checking shapes ahead of the call is
	// the caller's responsibility; this sentinel is the failure mode
	// when they didn't.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a slice that exceeds a storage's shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidShape indicates a non-positive dimension count or a
	// shape entry <= 0 passed to New.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrNilDescriptor indicates a Descriptor whose Copy or Zero
	// function is nil was passed to New, MapMerged or CastCopy; a
	// storage cannot copy its scalars without one.
	ErrNilDescriptor = errors.New("matrix: nil descriptor")
)

// wrapf tags a sentinel with the operation name for consistent,
// greppable error messages. errors.Is still matches the sentinel through
// the %w wrap.
func wrapf(op string, err error) error {
	return fmt.Errorf("matrix: %s: %w", op, err)
}
