// SPDX-License-Identifier: MIT
// Package: matrix
//
// dtype.go — the scalar contract a Storage[T] is built on.
//
// The original storage engine dispatches at runtime over a closed dtype
// enum (int8..float64, plus a "host object" tag for opaque references
// counted by the embedding language). In Go, the enum becomes a type
// parameter: Storage[T] is monomorphized per T by the compiler. Of the
// per-dtype behavior the original looked up in a table, copy and zero
// value are supplied once as a Descriptor[T]; equality is Go's == on
// the comparable T.
//
// Dtype itself survives as a label, carried on Descriptor for
// diagnostics and for InferDtype, which classifies a bare scalar the way
// the original infers "the minimum dtype for a value" when the right
// operand of a merged map is a plain scalar rather than a Storage.

package matrix

import "fmt"

// Scalar is the constraint every stored value type must satisfy: it must
// support ==, since the storage's central invariant ("no stored leaf
// equals the default") is defined by value equality.
type Scalar interface {
	comparable
}

// Dtype labels the shape of a scalar type for diagnostics and for
// InferDtype. It carries no behavior; Descriptor[T] does.
type Dtype uint8

const (
	DtypeUnknown Dtype = iota
	DtypeBool
	DtypeInt64
	DtypeFloat64
	DtypeString
	DtypeHostObject
)

func (d Dtype) String() string {
	switch d {
	case DtypeBool:
		return "bool"
	case DtypeInt64:
		return "int64"
	case DtypeFloat64:
		return "float64"
	case DtypeString:
		return "string"
	case DtypeHostObject:
		return "host-object"
	default:
		return "unknown"
	}
}

// Descriptor supplies the operations a Storage[T] needs on its scalar
// type but cannot derive from comparable alone: a display label, a copy
// primitive (identity for immutable Go values, deep for anything that
// needs it), a zero value, and — only for a host-object dtype — a pair
// of lifecycle hooks a host embedding this package can use to track
// external references it stores as T.
type Descriptor[T Scalar] struct {
	// Dtype labels this descriptor for error messages and diagnostics.
	Dtype Dtype

	// Copy returns an independent copy of v. For plain value types this
	// is the identity function; it exists so a host-object descriptor
	// can, for example, increment a reference count on copy.
	Copy func(v T) T

	// Zero returns this dtype's zero value. It must be non-nil for the
	// descriptor to validate; New always takes the default explicitly
	// and does not call Zero.
	Zero func() T

	// Mark and Release are host-object lifecycle hooks. They are nil
	// for every built-in descriptor and are only consulted by
	// Storage.Release and Storage.Mark when Dtype == DtypeHostObject.
	// Use WithHostHooks (options.go) to build a Descriptor with both
	// set and Dtype set to DtypeHostObject together.
	Mark    func(v T)
	Release func(v T)
}

// eq reports whether a and b are the same value. Scalar already
// guarantees comparable, so this is just ==; it exists as a method so
// callers never need to remember that fact, and so a future descriptor
// hook (e.g. NaN-aware equality) has one place to live.
func (d Descriptor[T]) eq(a, b T) bool {
	return a == b
}

// NewDescriptor builds a Descriptor for a plain value type: Copy is the
// identity, Zero returns the Go zero value of T, and no host hooks are
// installed. Use this for bool, int64, float64, string and similar.
func NewDescriptor[T Scalar](dtype Dtype) Descriptor[T] {
	var zero T
	return Descriptor[T]{
		Dtype: dtype,
		Copy:  func(v T) T { return v },
		Zero:  func() T { return zero },
	}
}

// InferDtype classifies a bare scalar the way the original storage
// infers "the minimum dtype for a value" when a merged map's right
// operand is a plain scalar rather than a Storage. Unlike the rest of
// this package, inference is inherently a runtime classification (given
// an arbitrary T, decide which label fits) rather than something the
// compiler can monomorphize away, so a type switch is unavoidable here.
func InferDtype[T Scalar](v T) Dtype {
	switch any(v).(type) {
	case bool:
		return DtypeBool
	case int64, int, int32:
		return DtypeInt64
	case float64, float32:
		return DtypeFloat64
	case string:
		return DtypeString
	default:
		return DtypeHostObject
	}
}

// validate reports ErrNilDescriptor when a required field is missing.
func (d Descriptor[T]) validate() error {
	if d.Copy == nil || d.Zero == nil {
		return fmt.Errorf("matrix: Descriptor: %w", ErrNilDescriptor)
	}
	return nil
}
