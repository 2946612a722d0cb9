// SPDX-License-Identifier: MIT
// Package: matrix
//
// count.go — the counting queries in spec.md §4.7. Both are defined in
// terms of EachStored rather than walking rows directly, so a view's
// offset/shape restriction is honored automatically instead of being
// re-implemented here.

package matrix

// CountStored returns the number of coordinates in s holding a value
// other than the default.
func (s *Storage[T]) CountStored() int {
	n := 0
	s.EachStored(func(T, []int) { n++ })
	return n
}

// CountNonDiagonal returns the number of stored off-diagonal
// coordinates in a two-dimensional storage. It returns ErrNotImplemented
// for any other dimensionality, matching the original storage engine's
// scope: the diagonal is only a meaningful concept for a matrix.
func (s *Storage[T]) CountNonDiagonal() (int, error) {
	if s.dim != 2 {
		return 0, wrapf("CountNonDiagonal", ErrNotImplemented)
	}
	n := 0
	s.EachStored(func(_ T, idx []int) {
		if idx[0] != idx[1] {
			n++
		}
	})
	return n, nil
}
