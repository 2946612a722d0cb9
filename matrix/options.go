// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go — functional configuration for New. Kept deliberately
// small: every knob here changes observable behavior and is covered by
// a test, following the no-dead-switches discipline the rest of this
// package's tests hold every exported branch to.

package matrix

// Option mutates the resolved options for a new Storage[T]. Safe to
// apply more than once; the last application wins.
type Option func(*options)

type options struct {
	skipBoundsCheck bool
}

// WithHostHooks is reserved for callers building a host-object
// Descriptor[T] directly; Mark/Release live on Descriptor itself
// (dtype.go) rather than on options, since they are properties of the
// dtype, not of a single Storage instance. This function exists so
// call sites that construct a Descriptor and a Storage together can
// express both in one place; it returns a copy of desc with its hooks
// set and its Dtype set to DtypeHostObject, for use as:
// New(WithHostHooks(desc, mark, release), ...).
func WithHostHooks[T Scalar](desc Descriptor[T], mark, release func(T)) Descriptor[T] {
	desc.Dtype = DtypeHostObject
	desc.Mark = mark
	desc.Release = release
	return desc
}

func resolveOptions(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithoutBoundsCheck disables the defensive OutOfRange check that Ref,
// Get, Set and Remove otherwise perform before touching the storage.
// spec.md places bounds validation on the caller ("OutOfRange is the
// caller's responsibility"); by default this package checks anyway,
// since a wrong slice would otherwise silently read or write outside
// the logical shape. Use this option only in call sites that have
// already validated the slice and want to skip the redundant check.
func WithoutBoundsCheck() Option {
	return func(o *options) { o.skipBoundsCheck = true }
}
