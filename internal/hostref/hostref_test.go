// SPDX-License-Identifier: MIT
// Package: lol/internal/hostref

package hostref_test

import (
	"testing"

	"github.com/sparselol/lol/internal/hostref"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNil(t *testing.T) {
	var h hostref.HostRef[int]
	require.True(t, h.IsNil())
	require.Nil(t, h.Get())
}

func TestNewHostRefWrapsPointer(t *testing.T) {
	x := 42
	h := hostref.NewHostRef(&x)
	require.False(t, h.IsNil())
	require.Same(t, &x, h.Get())
}

func TestHostRefIsComparable(t *testing.T) {
	x := 1
	a := hostref.NewHostRef(&x)
	b := hostref.NewHostRef(&x)
	require.Equal(t, a, b)

	var zero hostref.HostRef[int]
	require.NotEqual(t, a, zero)
}
