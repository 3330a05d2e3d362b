package go_itersort

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingIterator(t *testing.T) {
	it := NewMappingIterator[int, int](
		NewSliceIterator([]int{1, 2, 3, 4, 5}),
		func(v int) int { return v * v },
	)
	require.Equal(t, CategoryMap, it.Category())

	// exactly one transformed element per source element, same order
	require.Equal(t, []int{1, 4, 9, 16, 25}, ToSlice(it))
	require.False(t, it.Next())
	require.Equal(t, 0, it.Value())
	require.NoError(t, it.Close())
}

func TestMappingIteratorChangesType(t *testing.T) {
	it := NewMappingIterator[int, string](
		NewRangeIterator(0, 3, 1),
		strconv.Itoa,
	)
	require.Equal(t, []string{"0", "1", "2"}, ToSlice(it))
}

func TestMappingIteratorEmptySource(t *testing.T) {
	it := NewMappingIterator[int, int](
		NewSliceIterator[int](nil),
		func(v int) int { return v * v },
	)
	require.False(t, it.Next())
	require.NoError(t, it.Close())
}

func TestMappingIteratorClosesSource(t *testing.T) {
	src := NewSliceIterator([]int{1})
	it := NewMappingIterator[int, int](src, func(v int) int { return v })

	require.NoError(t, it.Close())
	require.ErrorIs(t, it.Close(), ClosedIterator)
	require.ErrorIs(t, src.Close(), ClosedIterator)
}

func TestMappingIteratorReset(t *testing.T) {
	it := NewMappingIterator[int, int](
		NewSliceIterator([]int{3, 5, 7}),
		func(v int) int { return v * 10 },
	)
	require.True(t, it.Next())
	require.Equal(t, 30, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 50, it.Value())

	// reset rewinds only the source, the cached value stays until the next Next
	require.NoError(t, it.Reset())
	require.Equal(t, 50, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 50, it.Value()) // the slice source resets onto its first element
}

func TestMappingIteratorEqual(t *testing.T) {
	backing := []int{1, 2}
	double := func(v int) int { return v * 2 }

	a := NewMappingIterator[int, int](NewSliceIterator(backing), double)
	b := NewMappingIterator[int, int](NewSliceIterator(backing), double)
	require.True(t, a.Equal(b))

	a.Next()
	require.False(t, a.Equal(b))
}

func TestAdapterChain(t *testing.T) {
	for i, n := range []int{0, 1, 10, 100} {
		t.Run(fmt.Sprintf("test %d", i), func(t *testing.T) {
			// squares of even numbers below n
			it := NewMappingIterator[int, int](
				NewFilteringIterator[int](
					NewRangeIterator(0, n, 1),
					func(v int) bool { return v%2 == 0 },
				),
				func(v int) int { return v * v },
			)

			var expected []int
			for v := 0; v < n; v += 2 {
				expected = append(expected, v*v)
			}
			require.Equal(t, expected, ToSlice(it))
			require.NoError(t, it.Close())
		})
	}
}
