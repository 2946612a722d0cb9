// SPDX-License-Identifier: MIT
// Package: matrix
//
// recurse.go — the two-sided traversal engine described in spec.md
// §4.6: Eq, MapMerged, Each and EachStored. Every function here walks
// in reference coordinates: for a node at source key K sitting at
// recursion depth rec, the logical index is K - offset(rec), and the
// node is in range iff 0 <= K - offset(rec) < refShape(rec). Traversal
// always skips nodes below offset(rec) and stops the instant the index
// reaches refShape(rec); this is the sole ordering guarantee this
// engine makes, and every loop below relies on it instead of re-scanning.
//
// Recursion depth here counts UP from 0 at the outermost (top-level)
// list to dim-1 at the leaf axis — the same direction access.go's
// refSingle walks offset/shape in — unlike node.go's countStored, whose
// depth counts DOWN from dim-1 to 0 at the leaf. Both conventions come
// straight from the original storage engine's two call sites for
// "depth"; each is documented locally rather than unified, to avoid
// disguising which convention a given function follows.

package matrix

// recurseState resolves a Storage to its source and exposes per-depth
// shape/offset accessors. Because views are normalized at construction
// (see storage.go's view method), resolving to the source is O(1): no
// src-chain walk is needed.
type recurseState[T Scalar] struct {
	ref *Storage[T]
}

func (r recurseState[T]) axisAt(rec int) int   { return rec }
func (r recurseState[T]) refShape(rec int) int { return r.ref.shape[r.axisAt(rec)] }
func (r recurseState[T]) offsetAt(rec int) int { return r.ref.offset[r.axisAt(rec)] }
func (r recurseState[T]) initVal() T           { return r.ref.defaultVal }
func (r recurseState[T]) topLevelList() *orderedList[T] {
	return r.ref.src.rows
}

// ---------------------------------------------------------------------
// Eq (spec.md §4.6.1)
// ---------------------------------------------------------------------

// Eq reports whether a and b denote the same logical content: every
// reference coordinate holds the same value on both sides, treating a
// missing coordinate as that side's own default.
func Eq[T Scalar](a, b *Storage[T]) (bool, error) {
	if err := sameShape(a.dim, a.shape, b.dim, b.shape); err != nil {
		return false, wrapf("Eq", err)
	}

	ra := recurseState[T]{ref: a}
	rb := recurseState[T]{ref: b}
	return eqLists(ra, rb, ra.topLevelList(), rb.topLevelList(), 0), nil
}

func sameShape(dimA int, shapeA []int, dimB int, shapeB []int) error {
	if dimA != dimB {
		return ErrDimensionMismatch
	}
	for i := range shapeA {
		if shapeA[i] != shapeB[i] {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// eqLists compares la and lb, both sitting at recursion depth rec,
// within the reference window [offset(rec), offset(rec)+refShape(rec)).
// When neither side has a node left in that window this level's entire
// remaining range is, on both sides, filled by that side's own default
// — so the two must be compared here directly, at every depth, not just
// once at the top: a view's window can hide an outer branch's stored
// data while still matching it as "present" one level up (the branch
// existed, just not inside this axis's slice), leaving this level's
// walk with nothing to compare unless it checks the defaults itself.
func eqLists[T Scalar](ra, rb recurseState[T], la, lb *orderedList[T], rec int) bool {
	dim := ra.ref.dim
	offA, offB := ra.offsetAt(rec), rb.offsetAt(rec)
	length := ra.refShape(rec)

	ca, cb := la.first, lb.first
	for ca != nil && int(ca.key)-offA < 0 {
		ca = ca.next
	}
	for cb != nil && int(cb.key)-offB < 0 {
		cb = cb.next
	}

	for {
		ia, oka := index(ca, offA, length)
		ib, okb := index(cb, offB, length)
		switch {
		case !oka && !okb:
			return ra.ref.desc.eq(ra.initVal(), rb.initVal())
		case oka && (!okb || ia < ib):
			if !eqAgainstDefault(ra, ca, rec, rb.initVal()) {
				return false
			}
			ca = ca.next
		case okb && (!oka || ib < ia):
			if !eqAgainstDefault(rb, cb, rec, ra.initVal()) {
				return false
			}
			cb = cb.next
		default:
			if rec == dim-1 {
				if !ra.ref.desc.eq(ca.scalar, cb.scalar) {
					return false
				}
			} else if !eqLists(ra, rb, ca.sub, cb.sub, rec+1) {
				return false
			}
			ca, cb = ca.next, cb.next
		}
	}
}

func index[T Scalar](n *node[T], off, length int) (int, bool) {
	if n == nil {
		return 0, false
	}
	i := int(n.key) - off
	if i >= length {
		return 0, false
	}
	return i, true
}

// eqAgainstDefault compares the subtree rooted at n (n sits at depth
// rec) to a fully-default subtree with scalar value other, descending
// through every deeper axis's own offset/shape bound.
func eqAgainstDefault[T Scalar](rs recurseState[T], n *node[T], rec int, other T) bool {
	if rec == rs.ref.dim-1 {
		return rs.ref.desc.eq(n.scalar, other)
	}
	off := rs.offsetAt(rec + 1)
	length := rs.refShape(rec + 1)
	for cur := n.sub.first; cur != nil; cur = cur.next {
		idx := int(cur.key) - off
		if idx < 0 {
			continue
		}
		if idx >= length {
			break
		}
		if !eqAgainstDefault(rs, cur, rec+1, other) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------
// MapMerged (spec.md §4.6.2)
// ---------------------------------------------------------------------

// MapMerged combines l and r element-wise with combine, using each
// side's default as the phantom operand where the other side is
// absent. The result's default is combine(l.Default(), r.Default())
// unless defaultOverride is supplied.
func MapMerged[L, R, O Scalar](l *Storage[L], r *Storage[R], combine func(L, R) O, out Descriptor[O], defaultOverride *O) (*Storage[O], error) {
	if err := out.validate(); err != nil {
		return nil, wrapf("MapMerged", err)
	}
	if err := sameShape(l.dim, l.shape, r.dim, r.shape); err != nil {
		return nil, wrapf("MapMerged", err)
	}

	resultDefault := combine(l.defaultVal, r.defaultVal)
	if defaultOverride != nil {
		resultDefault = *defaultOverride
	}

	res := &Storage[O]{
		dim:        l.dim,
		desc:       out,
		shape:      append([]int(nil), l.shape...),
		offset:     make([]int, l.dim),
		defaultVal: resultDefault,
		refcount:   new(int32),
	}
	*res.refcount = 1
	res.src = res

	rl := recurseState[L]{ref: l}
	rr := recurseState[R]{ref: r}
	res.rows = mapMergedLists(rl, rr, rl.topLevelList(), rr.topLevelList(), 0, combine, out, resultDefault)
	return res, nil
}

func mapMergedLists[L, R, O Scalar](rl recurseState[L], rr recurseState[R], ll *orderedList[L], lr *orderedList[R], rec int, combine func(L, R) O, out Descriptor[O], resultDefault O) *orderedList[O] {
	dim := rl.ref.dim
	offL, offR := rl.offsetAt(rec), rr.offsetAt(rec)
	length := rl.refShape(rec)

	cl, cr := ll.first, lr.first
	for cl != nil && int(cl.key)-offL < 0 {
		cl = cl.next
	}
	for cr != nil && int(cr.key)-offR < 0 {
		cr = cr.next
	}

	result := &orderedList[O]{}
	var tail *node[O]
	emit := func(idx int, v O, sub *orderedList[O], leaf bool) {
		nn := &node[O]{key: uint64(idx)}
		if leaf {
			nn.scalar = v
		} else {
			nn.sub = sub
		}
		if tail == nil {
			result.first = nn
		} else {
			tail.next = nn
		}
		tail = nn
	}

	for {
		il, okl := index(cl, offL, length)
		ir, okr := index(cr, offR, length)
		switch {
		case !okl && !okr:
			return result
		case okl && (!okr || il < ir):
			if v, sub, leaf, ok := mapOnlyLeft(rl, cl, rec, rr.initVal(), combine, out, resultDefault); ok {
				emit(il, v, sub, leaf)
			}
			cl = cl.next
		case okr && (!okl || ir < il):
			if v, sub, leaf, ok := mapOnlyRight(rr, cr, rec, rl.initVal(), combine, out, resultDefault); ok {
				emit(ir, v, sub, leaf)
			}
			cr = cr.next
		default:
			if rec == dim-1 {
				v := combine(cl.scalar, cr.scalar)
				if !out.eq(v, resultDefault) {
					emit(il, v, nil, true)
				}
			} else {
				child := mapMergedLists(rl, rr, cl.sub, cr.sub, rec+1, combine, out, resultDefault)
				if !child.empty() {
					emit(il, resultDefault, child, false)
				}
			}
			cl, cr = cl.next, cr.next
		}
	}
}

// mapOnlyLeft handles the "only left present" direction: n (a left-side
// node at depth rec) is combined against rDefault as the phantom right
// operand, recursively for every deeper axis.
func mapOnlyLeft[L, R, O Scalar](rl recurseState[L], n *node[L], rec int, rDefault R, combine func(L, R) O, out Descriptor[O], resultDefault O) (scalar O, sub *orderedList[O], leaf, ok bool) {
	if rec == rl.ref.dim-1 {
		v := combine(n.scalar, rDefault)
		if out.eq(v, resultDefault) {
			return scalar, nil, true, false
		}
		return v, nil, true, true
	}

	off := rl.offsetAt(rec + 1)
	length := rl.refShape(rec + 1)
	built := &orderedList[O]{}
	var tail *node[O]
	cur := n.sub.first
	for cur != nil && int(cur.key)-off < 0 {
		cur = cur.next
	}
	for cur != nil {
		idx := int(cur.key) - off
		if idx >= length {
			break
		}
		if v, s, leafChild, okChild := mapOnlyLeft(rl, cur, rec+1, rDefault, combine, out, resultDefault); okChild {
			nn := &node[O]{key: uint64(idx)}
			if leafChild {
				nn.scalar = v
			} else {
				nn.sub = s
			}
			if tail == nil {
				built.first = nn
			} else {
				tail.next = nn
			}
			tail = nn
		}
		cur = cur.next
	}
	if built.empty() {
		return scalar, nil, false, false
	}
	return scalar, built, false, true
}

// mapOnlyRight mirrors mapOnlyLeft for the "only right present" case.
func mapOnlyRight[L, R, O Scalar](rr recurseState[R], n *node[R], rec int, lDefault L, combine func(L, R) O, out Descriptor[O], resultDefault O) (scalar O, sub *orderedList[O], leaf, ok bool) {
	if rec == rr.ref.dim-1 {
		v := combine(lDefault, n.scalar)
		if out.eq(v, resultDefault) {
			return scalar, nil, true, false
		}
		return v, nil, true, true
	}

	off := rr.offsetAt(rec + 1)
	length := rr.refShape(rec + 1)
	built := &orderedList[O]{}
	var tail *node[O]
	cur := n.sub.first
	for cur != nil && int(cur.key)-off < 0 {
		cur = cur.next
	}
	for cur != nil {
		idx := int(cur.key) - off
		if idx >= length {
			break
		}
		if v, s, leafChild, okChild := mapOnlyRight(rr, cur, rec+1, lDefault, combine, out, resultDefault); okChild {
			nn := &node[O]{key: uint64(idx)}
			if leafChild {
				nn.scalar = v
			} else {
				nn.sub = s
			}
			if tail == nil {
				built.first = nn
			} else {
				tail.next = nn
			}
			tail = nn
		}
		cur = cur.next
	}
	if built.empty() {
		return scalar, nil, false, false
	}
	return scalar, built, false, true
}

// ---------------------------------------------------------------------
// Each / EachStored (spec.md §4.6.3)
// ---------------------------------------------------------------------

// EachStored visits every stored node, in reference coordinates, in
// non-decreasing index order per axis.
func (s *Storage[T]) EachStored(fn func(v T, idx []int)) {
	rs := recurseState[T]{ref: s}
	idx := make([]int, s.dim)
	eachStoredRec(rs, rs.topLevelList(), 0, idx, fn)
}

func eachStoredRec[T Scalar](rs recurseState[T], l *orderedList[T], rec int, idx []int, fn func(T, []int)) {
	dim := rs.ref.dim
	off := rs.offsetAt(rec)
	length := rs.refShape(rec)
	axis := rec

	for cur := l.first; cur != nil; cur = cur.next {
		i := int(cur.key) - off
		if i < 0 {
			continue
		}
		if i >= length {
			break
		}
		idx[axis] = i
		if rec == dim-1 {
			fn(cur.scalar, append([]int(nil), idx...))
		} else {
			eachStoredRec(rs, cur.sub, rec+1, idx, fn)
		}
	}
}

// Each visits every coordinate in the storage's shape, in row-major
// order, supplying either the stored value or the storage's default.
func (s *Storage[T]) Each(fn func(v T, idx []int)) {
	rs := recurseState[T]{ref: s}
	idx := make([]int, s.dim)
	eachDenseRec(rs, rs.topLevelList(), 0, idx, fn)
}

func eachDenseRec[T Scalar](rs recurseState[T], l *orderedList[T], rec int, idx []int, fn func(T, []int)) {
	dim := rs.ref.dim
	off := rs.offsetAt(rec)
	length := rs.refShape(rec)
	axis := rec

	cur := l.first
	for cur != nil && int(cur.key)-off < 0 {
		cur = cur.next
	}

	for pos := 0; pos < length; pos++ {
		hasNode := cur != nil && int(cur.key)-off == pos
		idx[axis] = pos
		switch {
		case hasNode && rec == dim-1:
			fn(cur.scalar, append([]int(nil), idx...))
		case hasNode:
			eachDenseRec(rs, cur.sub, rec+1, idx, fn)
		case rec == dim-1:
			fn(rs.initVal(), append([]int(nil), idx...))
		default:
			emitDenseDefault(rs, rec+1, idx, fn)
		}
		if hasNode {
			cur = cur.next
		}
	}
}

// emitDenseDefault fills every remaining axis with the default value
// when a whole subtree at rec is absent, without ever consulting rows.
func emitDenseDefault[T Scalar](rs recurseState[T], rec int, idx []int, fn func(T, []int)) {
	dim := rs.ref.dim
	axis := rec
	length := rs.refShape(rec)
	for i := 0; i < length; i++ {
		idx[axis] = i
		if rec == dim-1 {
			fn(rs.initVal(), append([]int(nil), idx...))
		} else {
			emitDenseDefault(rs, rec+1, idx, fn)
		}
	}
}
