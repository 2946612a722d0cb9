// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// impl_diagonal.go — Diagonal(n, ...) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidDimension).
//   - Builds an n×n Storage[T] and calls diagAt(i) for i in [0, n) to
//     obtain the value at coordinate (i, i).
//   - Any diagAt(i) equal to defaultVal is skipped rather than stored,
//     preserving the "no stored leaf equals the default" invariant.
//
// Complexity: O(n) calls to diagAt, O(k) stored nodes where k is the
// number of non-default diagonal entries.

package builder

import (
	"fmt"

	"github.com/sparselol/lol/matrix"
)

const (
	methodDiagonal  = "Diagonal"
	minDiagonalSize = 1
)

// Diagonal builds an n×n Storage[T] whose (i, i) entries come from
// diagAt and whose off-diagonal entries are defaultVal.
func Diagonal[T matrix.Scalar](desc matrix.Descriptor[T], n int, defaultVal T, diagAt func(i int) T, opts ...matrix.Option) (*matrix.Storage[T], error) {
	if n < minDiagonalSize {
		return nil, fmt.Errorf("%s: n=%d (must be >= %d): %w", methodDiagonal, n, minDiagonalSize, ErrInvalidDimension)
	}

	s, err := matrix.New(desc, []int{n, n}, defaultVal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDiagonal, err)
	}

	for i := 0; i < n; i++ {
		v := diagAt(i)
		if v == defaultVal {
			continue
		}
		if err := s.InsertRaw([]int{i, i}, v); err != nil {
			return nil, fmt.Errorf("%s: InsertRaw(%d,%d): %w", methodDiagonal, i, i, err)
		}
	}
	return s, nil
}
