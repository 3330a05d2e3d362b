package go_itersort

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilteringIterator(t *testing.T) {
	type test struct {
		values   []int
		filter   func(int) bool
		expected []int
	}

	tests := []test{
		{
			values:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			filter:   func(v int) bool { return v%2 == 0 },
			expected: []int{2, 4, 6, 8, 10}, // original relative order
		},
		{
			values:   []int{1, 3, 5},
			filter:   func(v int) bool { return v%2 == 0 },
			expected: nil, // no element matches
		},
		{
			values:   []int{2, 4},
			filter:   func(v int) bool { return true },
			expected: []int{2, 4},
		},
		{
			values:   nil,
			filter:   func(v int) bool { return true },
			expected: nil,
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test %d", i), func(t *testing.T) {
			it := NewFilteringIterator[int](NewSliceIterator(tt.values), tt.filter)
			require.Equal(t, CategoryFilter, it.Category())
			require.Equal(t, tt.expected, ToSlice(it))
			require.False(t, it.Next())
			require.NoError(t, it.Close())
		})
	}
}

func TestFilteringIteratorOverRangeSource(t *testing.T) {
	it := NewFilteringIterator[int](
		NewRangeIterator(0, 20, 1),
		func(v int) bool { return v%5 == 0 },
	)
	require.Equal(t, []int{0, 5, 10, 15}, ToSlice(it))
}

func TestFilteringIteratorClosesSource(t *testing.T) {
	src := NewSliceIterator([]int{1, 2, 3})
	it := NewFilteringIterator[int](src, func(v int) bool { return true })

	require.NoError(t, it.Close())
	require.ErrorIs(t, it.Close(), ClosedIterator)
	// ownership was transferred, the source went down with the adapter
	require.ErrorIs(t, src.Close(), ClosedIterator)
}

func TestFilteringIteratorReset(t *testing.T) {
	it := NewFilteringIterator[int](
		NewSliceIterator([]int{1, 2, 3, 4}),
		func(v int) bool { return v%2 == 0 },
	)
	require.True(t, it.Next())
	require.Equal(t, 2, it.Value())

	// reset rewinds only the source and leaves the cached value alone,
	// the adapter must be advanced again
	require.NoError(t, it.Reset())
	require.Equal(t, 2, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 2, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 4, it.Value())
}

func TestFilteringIteratorEqual(t *testing.T) {
	backing := []int{1, 2, 3}
	even := func(v int) bool { return v%2 == 0 }

	a := NewFilteringIterator[int](NewSliceIterator(backing), even)
	b := NewFilteringIterator[int](NewSliceIterator(backing), even)
	require.True(t, a.Equal(b)) // source equality decides

	require.False(t, a.Equal(NewSliceIterator(backing)))
}
