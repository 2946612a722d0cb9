// SPDX-License-Identifier: MIT
// Package: matrix_test

package matrix_test

import (
	"fmt"

	"github.com/sparselol/lol/matrix"
)

func ExampleNew() {
	desc := matrix.NewDescriptor[int64](matrix.DtypeInt64)
	m, err := matrix.New(desc, []int{3, 3}, 0)
	if err != nil {
		panic(err)
	}

	_ = m.Set(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{1, 1}}, 5)
	v, _, _ := m.Get(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{1, 1}})
	fmt.Println(v)
	fmt.Println(m.CountStored())
	// Output:
	// 5
	// 1
}

func ExampleStorage_Ref_view() {
	desc := matrix.NewDescriptor[int64](matrix.DtypeInt64)
	m, _ := matrix.New(desc, []int{4, 4}, 0)
	_ = m.Set(matrix.Slice{Coords: []int{2, 2}, Lengths: []int{1, 1}}, 9)

	_, view, _ := m.Ref(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{3, 3}})
	v, _, _ := view.Get(matrix.Slice{Coords: []int{1, 1}, Lengths: []int{1, 1}})
	fmt.Println(v)
	view.Release()
	// Output:
	// 9
}
