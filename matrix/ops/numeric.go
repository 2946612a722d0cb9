// SPDX-License-Identifier: MIT
// Package: lol/matrix/ops
//
// numeric.go — element-wise arithmetic over two storages of the same
// numeric scalar type, built on matrix.MapMerged. Each wrapper supplies
// the obvious combiner and lets MapMerged's own default-vs-default rule
// decide the result's default, so Add(a, b).Default() == a.Default() +
// b.Default() without either wrapper having to compute it separately.

package ops

import "github.com/sparselol/lol/matrix"

// Number is the scalar constraint every combiner in this file accepts.
// It embeds comparable so a Number type parameter can be passed
// straight through to matrix.MapMerged, whose own Scalar constraint
// requires comparability.
type Number interface {
	comparable
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Add returns a - b's counterpart: a fresh storage where every
// coordinate holds a's value plus b's value.
func Add[T Number](a, b *matrix.Storage[T], desc matrix.Descriptor[T]) (*matrix.Storage[T], error) {
	return matrix.MapMerged(a, b, addCombine[T], desc, nil)
}

// Sub returns a fresh storage where every coordinate holds a's value
// minus b's value.
func Sub[T Number](a, b *matrix.Storage[T], desc matrix.Descriptor[T]) (*matrix.Storage[T], error) {
	return matrix.MapMerged(a, b, subCombine[T], desc, nil)
}

// Mul returns a fresh storage where every coordinate holds a's value
// times b's value. MapMerged still visits every coordinate where at
// least one side is stored, since Mul's own combiner is opaque to it;
// for a zero default on both sides, a coordinate stored on only one
// side multiplies to the result's default and is not stored.
func Mul[T Number](a, b *matrix.Storage[T], desc matrix.Descriptor[T]) (*matrix.Storage[T], error) {
	return matrix.MapMerged(a, b, mulCombine[T], desc, nil)
}

func addCombine[T Number](x, y T) T { return x + y }
func subCombine[T Number](x, y T) T { return x - y }
func mulCombine[T Number](x, y T) T { return x * y }
