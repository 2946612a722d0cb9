// SPDX-License-Identifier: MIT
// Package: lol/matrix/ops
//
// Package ops provides two-input element-wise convenience wrappers
// (Add, Sub, Mul) that call matrix.MapMerged with a small numeric
// combiner and the caller's result descriptor. The combiners
// themselves are unexported.
package ops
