// Package lol is your in-memory playground for sparse n-dimensional
// arrays — from a single generic core to construction helpers and
// element-wise combinators built on top of it.
//
// 🚀 What is lol?
//
//	A generic, list-of-lists-backed sparse storage engine that brings
//	together:
//		• Storage[T]: an N-dimensional array keyed by a per-instance
//		  default value, storing only the coordinates that differ from it
//		• Views: O(1)-resolved aliasing sub-matrix slices, reference-counted
//		• Two-sided traversal: equality, merged element-wise map, dense and
//		  stored-only iteration
//		• A construction toolkit: diagonal, banded, literal-grid and
//		  random-sparse builders
//
// ✨ Why choose lol?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Sparsity by construction – no stored node ever equals the default
//   - Pure Go – no cgo, generics do the type-erasure work a dtype table
//     would otherwise need
//   - Extensible – bring your own scalar type via Descriptor[T], including
//     host-object references with mark/release hooks
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/            — Storage[T], the access protocol, traversal engine
//	matrix/ops/        — element-wise numeric combinators (Add, Sub, Mul)
//	builder/           — Diagonal, Banded, Dense, RandomSparse constructors
//	internal/hostref/  — HostRef[X], a comparable wrapper for host-object scalars
//
// Quick example:
//
//	desc := matrix.NewDescriptor[int64](matrix.DtypeInt64)
//	m, _ := matrix.New(desc, []int{3, 3}, 0)
//	_ = m.Set(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{1, 1}}, 5)
//	v, _, _ := m.Get(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{1, 1}})
//	// v == 5; every other coordinate still reads back 0, unstored.
//
//	go get github.com/sparselol/lol
package lol
