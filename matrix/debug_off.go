// SPDX-License-Identifier: MIT
// Package: matrix

//go:build !loldebug

package matrix

func assertNotDefault[T Scalar](s *Storage[T], v T) {}
