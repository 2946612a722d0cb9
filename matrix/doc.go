// Package matrix implements a sparse n-dimensional array storage engine
// based on nested ordered linked lists of lists (LoL).
//
// A Storage[T] holds a logical shape and a designated default value; any
// coordinate whose value equals the default is never materialized as a
// node, so matrices dominated by one background value stay compact. The
// storage is organized as a tree of sorted singly-linked lists: the
// top-level list is keyed by the outermost axis, and each of its nodes
// either holds a scalar (at the innermost axis) or a further sorted list
// keyed by the next axis in.
//
// Slicing a Storage[T] with non-unit lengths produces a view: a second
// Storage[T] that shares the source's rows and default value through a
// per-axis offset, without copying. Views are cheap and alias their
// source; Get and Copy materialize an independent owner when needed.
//
// Under the hood:
//
//	node.go     — node[T] and orderedList[T], the sorted linked-list core
//	storage.go  — Storage[T] and its create/retain/release lifecycle
//	slice.go    — Slice descriptors, slice-set and slice-copy
//	access.go   — Ref/Get/Set/InsertRaw/Remove, the read/write protocol
//	recurse.go  — recurseState and the two-sided traversal engine
//	cast.go     — CastCopy across dtypes
//	count.go    — CountStored / CountNonDiagonal
//	dtype.go    — the Scalar/Descriptor contract and the Dtype label
//	errors.go   — the sentinel error set
//	options.go  — functional options for New
//	debug.go, debug_off.go — loldebug-gated structural invariant assertions
//
// Every structural walk into nested sublists (recurse.go's traversal
// engine, slice.go's slice-copy/slice-set, node.go's removeRecursive)
// advances a cursor forward only, per axis, in key order; none of them
// re-scan a list from its head once they have moved past a key.
package matrix
