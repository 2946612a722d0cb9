// SPDX-License-Identifier: MIT
// Package: matrix
//
// cast.go — CastCopy, the dtype-conversion operation named in the
// original storage engine as "cast-copy": build a fresh owning storage
// of a possibly different scalar type from an existing one, applying a
// conversion function to every stored value.

package matrix

// CastCopy builds a fresh owning Storage[L] holding convert(v) for
// every coordinate src currently stores v, and convert(src.Default())
// everywhere else — shape and default are both copied and cast
// element-wise, so the result's default is derived, never chosen
// independently of src. A view is materialized via Copy first, so the
// walk below always runs against a zero-offset, full-shape tree.
func CastCopy[L, R Scalar](src *Storage[R], dst Descriptor[L], convert func(R) L) (*Storage[L], error) {
	if err := dst.validate(); err != nil {
		return nil, wrapf("CastCopy", err)
	}

	base := src
	if src.IsView() {
		base = src.Copy()
		defer base.Release()
	}

	defaultVal := dst.Copy(convert(base.defaultVal))

	out := &Storage[L]{
		dim:        base.dim,
		desc:       dst,
		shape:      append([]int(nil), base.shape...),
		offset:     make([]int, base.dim),
		defaultVal: defaultVal,
		refcount:   new(int32),
	}
	*out.refcount = 1
	out.src = out
	out.rows = castList(base.rows, base.dim-1, convert, dst, defaultVal)
	return out, nil
}

// castList additionally drops any converted leaf that lands on the
// destination's default, preserving the "no stored leaf equals the
// default" invariant across a cast that might collapse distinct source
// values onto the new default.
func castList[R, L Scalar](l *orderedList[R], depth int, convert func(R) L, desc Descriptor[L], defaultVal L) *orderedList[L] {
	out := &orderedList[L]{}
	var tail *node[L]
	for cur := l.first; cur != nil; cur = cur.next {
		var nn *node[L]
		if depth == 0 {
			v := desc.Copy(convert(cur.scalar))
			if desc.eq(v, defaultVal) {
				continue
			}
			nn = &node[L]{key: cur.key, scalar: v}
		} else {
			child := castList(cur.sub, depth-1, convert, desc, defaultVal)
			if child.empty() {
				continue
			}
			nn = &node[L]{key: cur.key, sub: child}
		}
		if tail == nil {
			out.first = nn
		} else {
			tail.next = nn
		}
		tail = nn
	}
	return out
}
