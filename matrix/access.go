// SPDX-License-Identifier: MIT
// Package: matrix
//
// access.go — the read/write protocol described in spec.md §4.3: Ref,
// Get, Set, InsertRaw and Remove. Ref and Get both fork on whether the
// requested slice names a single coordinate or a range; Set always
// funnels a scalar write through setSliceScalar or removeRecursive.

package matrix

// Ref returns a pointer to the value at sl if sl is single, or a view
// over sl otherwise. Exactly one return value is non-nil. The pointer
// form aliases storage internals (the found node's scalar, or this
// storage's own default) and is invalidated by any subsequent mutation
// of this storage; callers that need a stable value should dereference
// immediately.
func (s *Storage[T]) Ref(sl Slice) (*T, *Storage[T], error) {
	if !s.opts.skipBoundsCheck && !sl.withinShape(s.shape) {
		return nil, nil, wrapf("Ref", ErrOutOfRange)
	}
	if sl.Single() {
		return s.refSingle(sl.Coords), nil, nil
	}
	return nil, s.view(sl), nil
}

func (s *Storage[T]) refSingle(coords []int) *T {
	cur := s.src.rows
	for axis := 0; axis < s.dim; axis++ {
		key := uint64(s.offset[axis] + coords[axis])
		n := cur.find(key)
		if n == nil {
			return &s.defaultVal
		}
		if axis == s.dim-1 {
			return &n.scalar
		}
		cur = n.sub
	}
	return &s.defaultVal
}

// Get returns the value at sl if sl is single, or an independent copy
// of the sub-range otherwise. Exactly one return is the zero value.
func (s *Storage[T]) Get(sl Slice) (T, *Storage[T], error) {
	if !s.opts.skipBoundsCheck && !sl.withinShape(s.shape) {
		var zero T
		return zero, nil, wrapf("Get", ErrOutOfRange)
	}
	if sl.Single() {
		return *s.refSingle(sl.Coords), nil, nil
	}
	return *new(T), sliceCopy(s, sl), nil
}

// Set writes v across every coordinate in sl. Writing the default value
// removes any stored nodes in range instead of storing it, preserving
// the "no stored leaf equals the default" invariant.
func (s *Storage[T]) Set(sl Slice, v T) error {
	if !s.opts.skipBoundsCheck && !sl.withinShape(s.shape) {
		return wrapf("Set", ErrOutOfRange)
	}
	if s.desc.eq(v, s.defaultVal) {
		s.src.rows.removeRecursive(sl.Coords, s.offset, sl.Lengths, 0, s.dim)
		return nil
	}
	setSliceScalar(s, sl, v)
	return nil
}

// SetFrom is the entry point matching spec.md §4.3's "set (from a
// scalar)": it rejects a *Storage[T] right-hand side outright (matrix
// slice assignment is explicitly unimplemented, per spec.md §9's open
// question) and otherwise delegates to Set.
func (s *Storage[T]) SetFrom(sl Slice, v any) error {
	if _, ok := v.(*Storage[T]); ok {
		return wrapf("SetFrom", ErrNotImplemented)
	}
	scalar, ok := v.(T)
	if !ok {
		return wrapf("SetFrom", ErrTypeError)
	}
	return s.Set(sl, scalar)
}

// InsertRaw is the low-level, single-coordinate write path: it drills
// down creating intermediate sublists as needed and inserts-or-replaces
// a leaf value at the final axis, bypassing the default-value check
// Set performs. The caller is responsible for ensuring v does not equal
// the storage's default; violating this breaks the "no stored leaf
// equals the default" invariant and is only checked when built with the
// loldebug tag (see debug.go).
func (s *Storage[T]) InsertRaw(coords []int, v T) error {
	if !s.opts.skipBoundsCheck {
		full := Slice{Coords: coords, Lengths: onesLike(coords)}
		if !full.withinShape(s.shape) {
			return wrapf("InsertRaw", ErrOutOfRange)
		}
	}
	assertNotDefault(s, v)

	cur := s.src.rows
	for axis := 0; axis < s.dim; axis++ {
		key := uint64(s.offset[axis] + coords[axis])
		if axis == s.dim-1 {
			cur.insertLeaf(key, v)
			return nil
		}
		cur = cur.child(key)
	}
	return nil
}

func onesLike(coords []int) []int {
	ones := make([]int, len(coords))
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

// Remove deletes every stored value in sl's range. A range containing
// no stored nodes is a no-op.
func (s *Storage[T]) Remove(sl Slice) error {
	if !s.opts.skipBoundsCheck && !sl.withinShape(s.shape) {
		return wrapf("Remove", ErrOutOfRange)
	}
	s.src.rows.removeRecursive(sl.Coords, s.offset, sl.Lengths, 0, s.dim)
	return nil
}
