// SPDX-License-Identifier: MIT
// Package: matrix_test

package matrix_test

import (
	"testing"

	"github.com/sparselol/lol/matrix"
	"github.com/sparselol/lol/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestEqIdenticalContent(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 0)
	b := newIntStorage(t, []int{3, 3}, 0)
	require.NoError(t, a.Set(single(1, 1), 5))
	require.NoError(t, b.Set(single(1, 1), 5))

	eq, err := matrix.Eq(a, b)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEqDiffersOnOneCoordinate(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 0)
	b := newIntStorage(t, []int{3, 3}, 0)
	require.NoError(t, a.Set(single(1, 1), 5))
	require.NoError(t, b.Set(single(1, 1), 6))

	eq, err := matrix.Eq(a, b)
	require.NoError(t, err)
	require.False(t, eq)
}

// Two entirely-empty storages with different defaults must never compare
// equal: a naive merge-walk over two empty ranges has nothing to compare
// and would otherwise report true.
func TestEqEmptyStoragesWithDifferentDefaultsAreUnequal(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 0)
	b := newIntStorage(t, []int{3, 3}, 1)

	eq, err := matrix.Eq(a, b)
	require.NoError(t, err)
	require.False(t, eq)
}

func TestEqEmptyStoragesWithSameDefaultAreEqual(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 7)
	b := newIntStorage(t, []int{3, 3}, 7)

	eq, err := matrix.Eq(a, b)
	require.NoError(t, err)
	require.True(t, eq)
}

// A view's window can hide an outer branch's stored data while that
// branch still looks "present" one level up, leaving the sliced axis
// with nothing stored on either side. In that case the two sides must
// still compare unequal if their storage-wide defaults differ — the
// empty window is filled entirely by each side's own default, not by
// silently treating "nothing to compare" as a match.
func TestEqOnViewsWhoseWindowExcludesStoredDataComparesDefaults(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 0)
	b := newIntStorage(t, []int{3, 3}, 1)
	require.NoError(t, a.Set(single(1, 0), 5))
	require.NoError(t, b.Set(single(1, 0), 9))

	_, viewA, err := a.Ref(matrix.Slice{Coords: []int{0, 2}, Lengths: []int{3, 1}})
	require.NoError(t, err)
	_, viewB, err := b.Ref(matrix.Slice{Coords: []int{0, 2}, Lengths: []int{3, 1}})
	require.NoError(t, err)

	eq, err := matrix.Eq(viewA, viewB)
	require.NoError(t, err)
	require.False(t, eq, "column 2 is all-default on both sides, but the defaults (0 vs 1) differ")

	viewA.Release()
	viewB.Release()
}

func TestEqRejectsMismatchedShape(t *testing.T) {
	a := newIntStorage(t, []int{2, 2}, 0)
	b := newIntStorage(t, []int{3, 3}, 0)
	_, err := matrix.Eq(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMapMergedAddsBothSides(t *testing.T) {
	a := newIntStorage(t, []int{3, 3}, 0)
	b := newIntStorage(t, []int{3, 3}, 0)
	require.NoError(t, a.Set(single(0, 0), 3))
	require.NoError(t, b.Set(single(0, 0), 4))
	require.NoError(t, b.Set(single(1, 1), 10))

	sum, err := ops.Add(a, b, matrix.NewDescriptor[int64](matrix.DtypeInt64))
	require.NoError(t, err)

	v, _, err := sum.Get(single(0, 0))
	require.NoError(t, err)
	require.EqualValues(t, 7, v)

	v, _, err = sum.Get(single(1, 1))
	require.NoError(t, err)
	require.EqualValues(t, 10, v, "only-right-present coordinate combines against left's default")

	require.EqualValues(t, 0, sum.Default())
}

func TestMapMergedResultOmitsCoordinatesEqualToResultDefault(t *testing.T) {
	a := newIntStorage(t, []int{2, 2}, 0)
	b := newIntStorage(t, []int{2, 2}, 0)
	require.NoError(t, a.Set(single(0, 0), 5))
	require.NoError(t, b.Set(single(0, 0), -5))

	sum, err := ops.Add(a, b, matrix.NewDescriptor[int64](matrix.DtypeInt64))
	require.NoError(t, err)
	require.Equal(t, 0, sum.CountStored(), "5 + (-5) == default and must not be stored")
}

func TestEachStoredVisitsOnlyNonDefaultCoordinates(t *testing.T) {
	s := newIntStorage(t, []int{3, 3}, 0)
	require.NoError(t, s.Set(single(0, 1), 1))
	require.NoError(t, s.Set(single(2, 0), 2))

	seen := map[[2]int]int64{}
	s.EachStored(func(v int64, idx []int) {
		seen[[2]int{idx[0], idx[1]}] = v
	})
	require.Len(t, seen, 2)
	require.Equal(t, int64(1), seen[[2]int{0, 1}])
	require.Equal(t, int64(2), seen[[2]int{2, 0}])
}

func TestEachVisitsEveryCoordinateDenseOrDefault(t *testing.T) {
	s := newIntStorage(t, []int{2, 2}, -1)
	require.NoError(t, s.Set(single(0, 0), 9))

	count := 0
	s.Each(func(v int64, idx []int) {
		count++
		if idx[0] == 0 && idx[1] == 0 {
			require.EqualValues(t, 9, v)
		} else {
			require.EqualValues(t, -1, v)
		}
	})
	require.Equal(t, 4, count)
}

// A rectangular shape catches an axis/rec mix-up that a square shape
// cannot: with shape[0] != shape[1], swapping which axis a recursion
// depth maps to either clips a real coordinate out of range or reports
// it under the wrong index, while still leaving CountStored correct
// (the count doesn't care which axis a coordinate lands on).
func TestEachStoredOnRectangularShapeReportsCorrectIndices(t *testing.T) {
	s := newIntStorage(t, []int{2, 3}, 0)
	require.NoError(t, s.Set(single(0, 2), 7))
	require.NoError(t, s.Set(single(1, 0), 9))

	seen := map[[2]int]int64{}
	s.EachStored(func(v int64, idx []int) {
		seen[[2]int{idx[0], idx[1]}] = v
	})
	require.Len(t, seen, 2)
	require.Equal(t, int64(7), seen[[2]int{0, 2}])
	require.Equal(t, int64(9), seen[[2]int{1, 0}])
}

func TestEachOnRectangularShapeReportsCorrectIndices(t *testing.T) {
	s := newIntStorage(t, []int{2, 3}, -1)
	require.NoError(t, s.Set(single(1, 2), 4))

	seen := map[[2]int]int64{}
	s.Each(func(v int64, idx []int) {
		seen[[2]int{idx[0], idx[1]}] = v
	})
	require.Len(t, seen, 6, "a 2x3 shape has six coordinates, not a clipped three")
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			want := int64(-1)
			if r == 1 && c == 2 {
				want = 4
			}
			require.Equal(t, want, seen[[2]int{r, c}], "coordinate (%d,%d)", r, c)
		}
	}
}

func TestEachStoredRespectsViewBounds(t *testing.T) {
	s := newIntStorage(t, []int{4, 4}, 0)
	require.NoError(t, s.Set(single(0, 0), 1))
	require.NoError(t, s.Set(single(3, 3), 2))

	_, view, err := s.Ref(matrix.Slice{Coords: []int{2, 2}, Lengths: []int{2, 2}})
	require.NoError(t, err)

	n := 0
	view.EachStored(func(v int64, idx []int) {
		n++
		require.EqualValues(t, 2, v)
		require.Equal(t, []int{1, 1}, idx)
	})
	require.Equal(t, 1, n, "the view must only see (3,3), reached at its own local coordinate (1,1)")
	view.Release()
}
