// SPDX-License-Identifier: MIT
// Package: lol/builder
//
// Package builder provides deterministic constructors for
// github.com/sparselol/lol/matrix.Storage values: Diagonal, Banded,
// Dense (from a literal grid) and RandomSparse (Erdős–Rényi-style
// Bernoulli sampling over coordinates). Every constructor populates a
// fresh owning Storage via InsertRaw, skipping any coordinate whose
// computed value equals the storage's default, so the "no stored leaf
// equals the default" invariant holds without a caller having to think
// about it.
package builder
