// SPDX-License-Identifier: MIT
// Package: lol/builder

package builder

import "errors"

var (
	// ErrInvalidDimension is returned when a requested shape dimension
	// is less than the constructor's stated minimum.
	ErrInvalidDimension = errors.New("builder: invalid dimension")
	// ErrInvalidProbability is returned when RandomSparse is given a
	// probability outside the closed interval [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of [0,1]")
	// ErrNeedRandSource is returned when RandomSparse needs an RNG (a
	// probability strictly between 0 and 1) but none was configured.
	ErrNeedRandSource = errors.New("builder: rng is required for 0<p<1")
	// ErrRaggedData is returned when Dense is given row slices of
	// differing lengths.
	ErrRaggedData = errors.New("builder: ragged input data")
)
