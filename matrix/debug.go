// SPDX-License-Identifier: MIT
// Package: matrix
//
// debug.go — structural invariant assertions compiled in only under the
// loldebug build tag, per spec.md §7: "Structural invariant violations
// (e.g. attempting to store the default value)... implementations
// should assert in debug builds and treat this as a bug, not a runtime
// error." Production builds pay nothing for these checks; see
// debug_off.go for the no-op twin.

//go:build loldebug

package matrix

// assertNotDefault panics if v equals s's default value. InsertRaw is
// the only caller: unlike Set, it has no way to detect a default write
// and silently remove instead, since it does not know the caller's
// intent to write versus to clear.
func assertNotDefault[T Scalar](s *Storage[T], v T) {
	if s.desc.eq(v, s.defaultVal) {
		panic("matrix: InsertRaw called with a value equal to the storage default")
	}
}
