package go_itersort

import "math"

// maxInsertion is the subrange size below which introsort finishes with
// insertion sort.
const maxInsertion = 16

// Sort orders the elements of a slice iterator in place using introsort:
// quicksort bounded by a recursion depth budget of 2*floor(log2(n)),
// falling back to heapsort when the budget is exhausted and to insertion
// sort for small subranges. The sort is not stable.
//
// Only the iterator's element pointer table is permuted, the backing slice
// itself never moves. compare must implement a total order (negative, zero,
// positive). A nil iterator or an empty table is a silent no-op.
// After sorting the cursor is reset to index 0 with Value primed to the
// smallest element.
func Sort[T any](it *SliceIterator[T], compare CmpFunc[T]) {
	if it == nil || len(it.elems) == 0 {
		return
	}
	n := len(it.elems)
	if n <= 1 {
		return
	}

	depthLimit := 2 * int(math.Log2(float64(n)))
	introsort(it.elems, 0, n-1, depthLimit, compare)

	it.index = 0
	it.value = *it.elems[0]
	it.valid = true
}

func introsort[T any](elems []*T, begin, end, depthLimit int, compare CmpFunc[T]) {
	size := end - begin + 1

	if size < maxInsertion {
		insertionSort(elems, begin, end, compare)
		return
	}

	if depthLimit == 0 {
		heapSort(elems, begin, end, compare)
		return
	}

	pivot := partition(elems, begin, end, compare)
	if pivot > begin {
		introsort(elems, begin, pivot-1, depthLimit-1, compare)
	}
	if pivot < end {
		introsort(elems, pivot+1, end, depthLimit-1, compare)
	}
}

// insertionSort sorts elems[begin:end+1], efficient for small and
// nearly sorted subranges.
func insertionSort[T any](elems []*T, begin, end int, compare CmpFunc[T]) {
	for i := begin + 1; i <= end; i++ {
		for j := i; j > begin && compare(*elems[j-1], *elems[j]) > 0; j-- {
			elems[j], elems[j-1] = elems[j-1], elems[j]
		}
	}
}

// heapSort sorts elems[begin:end+1] with a binary max-heap: bottom-up
// build, then repeated extract-max. Used when quicksort recursion gets
// too deep to keep the O(n log n) worst case.
func heapSort[T any](elems []*T, begin, end int, compare CmpFunc[T]) {
	n := end - begin + 1

	for i := n/2 - 1; i >= 0; i-- {
		heapify(elems, begin, n, i, compare)
	}

	for i := n - 1; i > 0; i-- {
		elems[begin], elems[begin+i] = elems[begin+i], elems[begin]
		heapify(elems, begin, i, 0, compare)
	}
}

// heapify restores the max-heap property for the heap of size n rooted at
// index i, both relative to begin.
func heapify[T any](elems []*T, begin, n, i int, compare CmpFunc[T]) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n && compare(*elems[begin+left], *elems[begin+largest]) > 0 {
		largest = left
	}
	if right < n && compare(*elems[begin+right], *elems[begin+largest]) > 0 {
		largest = right
	}

	if largest != i {
		elems[begin+i], elems[begin+largest] = elems[begin+largest], elems[begin+i]
		heapify(elems, begin, n, largest, compare)
	}
}

// partition is a Lomuto partition around the last element: a single
// forward scan swaps elements <= pivot into the growing left side, then
// the pivot lands in its final slot.
func partition[T any](elems []*T, low, high int, compare CmpFunc[T]) int {
	pivot := elems[high]
	i := low

	for j := low; j < high; j++ {
		if compare(*elems[j], *pivot) <= 0 {
			elems[i], elems[j] = elems[j], elems[i]
			i++
		}
	}
	elems[i], elems[high] = elems[high], elems[i]
	return i
}
