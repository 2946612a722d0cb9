// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// impl_random_sparse.go — RandomSparse(shape, p, ...) constructor: an
// Erdős–Rényi-style sampler over an n-dimensional coordinate space.
// Each coordinate is included independently with probability p; the
// trial order (row-major over shape) is fixed, so a given seed and
// shape always sample the same coordinate set.
//
// Contract:
//   - every entry of shape >= 1 (else ErrInvalidDimension).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - an RNG is required whenever 0 < p < 1 (else ErrNeedRandSource);
//     p == 0 and p == 1 are deterministic and never consult the RNG.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/sparselol/lol/matrix"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse builds a Storage[T] of the given shape, including each
// coordinate independently with probability p and setting its value
// via valueAt. A coordinate whose sampled value equals defaultVal is
// skipped, as with every other constructor in this package.
func RandomSparse[T matrix.Scalar](desc matrix.Descriptor[T], shape []int, defaultVal T, p float64, valueAt func(coords []int) T, opts []matrix.Option, randOpts ...RandomOption) (*matrix.Storage[T], error) {
	for i, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("%s: shape[%d]=%d (must be >= 1): %w", methodRandomSparse, i, n, ErrInvalidDimension)
		}
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}

	cfg := resolveRandomConfig(randOpts)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	s, err := matrix.New(desc, shape, defaultVal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	coords := make([]int, len(shape))
	if err := randomSparseWalk(s, shape, coords, 0, p, cfg.rng, valueAt, defaultVal); err != nil {
		return nil, err
	}
	return s, nil
}

func randomSparseWalk[T matrix.Scalar](s *matrix.Storage[T], shape, coords []int, axis int, p float64, rng *rand.Rand, valueAt func([]int) T, defaultVal T) error {
	if axis == len(shape) {
		include := p == 1
		if !include && p > 0 {
			include = rng.Float64() < p
		}
		if !include {
			return nil
		}
		v := valueAt(coords)
		if v == defaultVal {
			return nil
		}
		if err := s.InsertRaw(append([]int(nil), coords...), v); err != nil {
			return fmt.Errorf("%s: InsertRaw(%v): %w", methodRandomSparse, coords, err)
		}
		return nil
	}
	for i := 0; i < shape[axis]; i++ {
		coords[axis] = i
		if err := randomSparseWalk(s, shape, coords, axis+1, p, rng, valueAt, defaultVal); err != nil {
			return err
		}
	}
	return nil
}
