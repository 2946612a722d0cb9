// SPDX-License-Identifier: MIT
// Package: matrix_test

package matrix_test

import (
	"testing"

	"github.com/sparselol/lol/internal/hostref"
	"github.com/sparselol/lol/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithHostHooksSetsDtypeAndHooks(t *testing.T) {
	var marked, released int
	base := matrix.NewDescriptor[hostref.HostRef[int]](matrix.DtypeHostObject)
	desc := matrix.WithHostHooks(base, func(hostref.HostRef[int]) { marked++ }, func(hostref.HostRef[int]) { released++ })

	require.Equal(t, matrix.DtypeHostObject, desc.Dtype)

	x := 1
	s, err := matrix.New(desc, []int{2}, hostref.HostRef[int]{})
	require.NoError(t, err)
	require.NoError(t, s.InsertRaw([]int{0}, hostref.NewHostRef(&x)))

	s.Mark()
	require.Equal(t, 2, marked, "Mark visits the one stored value plus the default")

	s.Release()
	require.Equal(t, 2, released)
}
