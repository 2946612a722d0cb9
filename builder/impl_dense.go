// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// impl_dense.go — Dense(data, ...) constructor: builds a two-dimensional
// Storage[T] from a literal row-major grid, the way a test or a small
// fixture would hand-write one.
//
// Contract:
//   - len(data) >= 1, and every row has the same length (else
//     ErrRaggedData).
//   - Cells equal to defaultVal are skipped rather than stored.

package builder

import (
	"fmt"

	"github.com/sparselol/lol/matrix"
)

const methodDense = "Dense"

// Dense builds a Storage[T] from a literal row-major grid.
func Dense[T matrix.Scalar](desc matrix.Descriptor[T], data [][]T, defaultVal T, opts ...matrix.Option) (*matrix.Storage[T], error) {
	if len(data) < minDiagonalSize {
		return nil, fmt.Errorf("%s: data has 0 rows: %w", methodDense, ErrInvalidDimension)
	}
	cols := len(data[0])
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", methodDense, r, len(row), cols, ErrRaggedData)
		}
	}

	s, err := matrix.New(desc, []int{len(data), cols}, defaultVal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDense, err)
	}

	for r, row := range data {
		for c, v := range row {
			if v == defaultVal {
				continue
			}
			if err := s.InsertRaw([]int{r, c}, v); err != nil {
				return nil, fmt.Errorf("%s: InsertRaw(%d,%d): %w", methodDense, r, c, err)
			}
		}
	}
	return s, nil
}
