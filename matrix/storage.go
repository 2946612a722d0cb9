// SPDX-License-Identifier: MIT
// Package: matrix
//
// storage.go — Storage[T], the matrix handle, and its lifecycle.
//
// An owning Storage has src == itself and holds the authoritative rows,
// shape, offset (all zero) and default value. A view shares its
// source's rows and starts life with a value-copy of the source's
// default (see the "Design deviation" note in SPEC_FULL.md §3 for why a
// copy, not a shared pointer, is safe here); it carries its own shape
// and offset and increments the source's reference count for as long
// as it exists.
//
// Views of views are normalized at construction time (view offsets are
// composed and src is set to the terminal owner directly), so resolving
// a Storage to its source is always O(1); nothing in this package walks
// a chain of src pointers.

package matrix

import "sync/atomic"

// Storage is a sparse n-dimensional array of T, encoded as nested
// ordered linked lists keyed by axis coordinate.
type Storage[T Scalar] struct {
	dim        int
	desc       Descriptor[T]
	shape      []int
	offset     []int
	defaultVal T
	rows       *orderedList[T]
	refcount   *int32
	src        *Storage[T]
	opts       options
}

// New creates an owning Storage[T] with the given logical shape and
// default value. It takes ownership of shape in the sense that the
// returned Storage's Shape() reflects it; the caller's slice is copied
// so later mutation of the argument cannot corrupt the storage.
func New[T Scalar](desc Descriptor[T], shape []int, defaultVal T, opts ...Option) (*Storage[T], error) {
	if err := desc.validate(); err != nil {
		return nil, wrapf("New", err)
	}
	if len(shape) == 0 {
		return nil, wrapf("New", ErrInvalidShape)
	}
	for _, n := range shape {
		if n <= 0 {
			return nil, wrapf("New", ErrInvalidShape)
		}
	}

	dim := len(shape)
	s := &Storage[T]{
		dim:        dim,
		desc:       desc,
		shape:      append([]int(nil), shape...),
		offset:     make([]int, dim),
		defaultVal: defaultVal,
		rows:       &orderedList[T]{},
		refcount:   new(int32),
		opts:       resolveOptions(opts),
	}
	*s.refcount = 1
	s.src = s
	return s, nil
}

// Dim returns the axis count.
func (s *Storage[T]) Dim() int { return s.dim }

// Shape returns this storage's logical extent along each axis. The
// returned slice is owned by the caller.
func (s *Storage[T]) Shape() []int { return append([]int(nil), s.shape...) }

// Default returns the scalar denoting "absent" for this storage.
func (s *Storage[T]) Default() T { return s.defaultVal }

// IsView reports whether this storage aliases another storage's rows.
func (s *Storage[T]) IsView() bool { return s.src != s }

// isOwner is IsView's negation, kept for readability at call sites that
// branch on ownership rather than view-ness.
func (s *Storage[T]) isOwner() bool { return s.src == s }

// Retain increments the reference count on this storage's source. Every
// view must be paired with exactly one Retain (performed automatically
// when the view is constructed) and exactly one Release.
func (s *Storage[T]) Retain() {
	atomic.AddInt32(s.src.refcount, 1)
}

// Release decrements the reference count on this storage's source. When
// it reaches zero, the source's rows are walked and, for a host-object
// dtype, every surviving stored value and the default value are handed
// to desc.Release. Calling Release on a view never touches the view's
// own defaultVal, only the source's, per spec.md §3 invariant 5.
func (s *Storage[T]) Release() {
	if atomic.AddInt32(s.src.refcount, -1) == 0 {
		s.src.releaseOwned()
	}
}

// refCount reports the current reference count on this storage's
// source. Exposed for tests validating the lifecycle invariants; not
// part of the stable programmatic surface described in spec.md §6.
func (s *Storage[T]) refCount() int32 {
	return atomic.LoadInt32(s.src.refcount)
}

func (s *Storage[T]) releaseOwned() {
	if s.desc.Dtype == DtypeHostObject && s.desc.Release != nil {
		s.rows.each(s.dim-1, func(v T) { s.desc.Release(v) })
		s.desc.Release(s.defaultVal)
	}
}

// Mark visits every stored value and the default value with
// desc.Mark, for a host-object dtype whose embedding host needs to keep
// a garbage collector's liveness trace up to date. It is a no-op for
// any other dtype.
func (s *Storage[T]) Mark() {
	if s.desc.Dtype == DtypeHostObject && s.desc.Mark != nil {
		s.rows.each(s.dim-1, func(v T) { s.desc.Mark(v) })
		s.desc.Mark(s.defaultVal)
	}
}

// each walks every leaf scalar reachable from l (l sits at the given
// recursion depth) without regard to coordinates; used only by
// releaseOwned/Mark, which need every stored value once regardless of
// where it sits.
func (l *orderedList[T]) each(depth int, fn func(T)) {
	for cur := l.first; cur != nil; cur = cur.next {
		if depth == 0 {
			fn(cur.scalar)
		} else {
			cur.sub.each(depth-1, fn)
		}
	}
}

// view constructs a Storage sharing s's source rows and default, with
// its own composed offset and the slice's lengths as its shape. Offsets
// are composed against s's own offset (not re-walked through s.src),
// which is what keeps resolution O(1) even for a view built from a
// view: s.offset is already expressed in the terminal owner's frame by
// the time this function runs, because every view was itself built by
// this same composition step.
func (s *Storage[T]) view(sl Slice) *Storage[T] {
	v := &Storage[T]{
		dim:        s.dim,
		desc:       s.desc,
		shape:      append([]int(nil), sl.Lengths...),
		offset:     make([]int, s.dim),
		defaultVal: s.defaultVal,
		rows:       s.src.rows,
		src:        s.src,
		opts:       s.opts,
	}
	for i := 0; i < s.dim; i++ {
		v.offset[i] = s.offset[i] + sl.Coords[i]
	}
	s.src.Retain()
	return v
}

// Copy materializes an independent owning Storage with the same
// logical content as s: a fresh default (desc.Copy'd) and a fresh rows
// tree covering s's full shape at zero offset. Equivalent to
// s.Get(fullSlice) but named for the round-trip property in spec.md §8.
func (s *Storage[T]) Copy() *Storage[T] {
	full := Slice{Coords: make([]int, s.dim), Lengths: s.Shape()}
	return sliceCopy(s, full)
}
