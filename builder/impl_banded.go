// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// impl_banded.go — Banded(rows, cols, bandwidth, ...) constructor.
//
// Canonical model:
//   - A two-dimensional Storage[T] populated only within bandwidth of
//     the main diagonal: |r - c| <= bandwidth.
//   - valueAt(r, c) is consulted for every in-band coordinate; entries
//     equal to defaultVal are skipped, matching Diagonal's policy.
//
// Contract:
//   - rows >= 1, cols >= 1 (else ErrInvalidDimension).
//   - bandwidth >= 0 (else ErrInvalidDimension).
//
// Complexity: O(rows*min(cols, 2*bandwidth+1)) calls to valueAt.

package builder

import (
	"fmt"

	"github.com/sparselol/lol/matrix"
)

const (
	methodBanded  = "Banded"
	minBandedSize = 1
	minBandwidth  = 0
)

// Banded builds a rows×cols Storage[T] populated within bandwidth of
// the main diagonal.
func Banded[T matrix.Scalar](desc matrix.Descriptor[T], rows, cols, bandwidth int, defaultVal T, valueAt func(r, c int) T, opts ...matrix.Option) (*matrix.Storage[T], error) {
	if rows < minBandedSize || cols < minBandedSize {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w", methodBanded, rows, cols, minBandedSize, ErrInvalidDimension)
	}
	if bandwidth < minBandwidth {
		return nil, fmt.Errorf("%s: bandwidth=%d (must be >= %d): %w", methodBanded, bandwidth, minBandwidth, ErrInvalidDimension)
	}

	s, err := matrix.New(desc, []int{rows, cols}, defaultVal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBanded, err)
	}

	for r := 0; r < rows; r++ {
		lo := r - bandwidth
		if lo < 0 {
			lo = 0
		}
		hi := r + bandwidth
		if hi > cols-1 {
			hi = cols - 1
		}
		for c := lo; c <= hi; c++ {
			v := valueAt(r, c)
			if v == defaultVal {
				continue
			}
			if err := s.InsertRaw([]int{r, c}, v); err != nil {
				return nil, fmt.Errorf("%s: InsertRaw(%d,%d): %w", methodBanded, r, c, err)
			}
		}
	}
	return s, nil
}
