package go_itersort

import (
	"errors"
	"io"

	"golang.org/x/exp/constraints"
)

// ClosedIterator is returned when Close is called more than once.
var ClosedIterator = errors.New("iterator is closed")

// Category tags the concrete kind of an iterator.
// Utilities never branch on it, but callers may (see Reset semantics per kind).
type Category uint8

const (
	// CategoryInput allows a single forward pass, re-iteration requires Reset.
	CategoryInput Category = iota
	// CategoryForward allows multiple forward passes.
	CategoryForward
	CategoryBidirectional
	CategoryRandomAccess
	CategoryZip
	CategoryFilter
	CategoryMap
)

// Iterator is used for working with sequences of possibly unknown size.
// Interface adds a performance penalty for indirection.
//
// The cursor starts before the first element: Value returns the zero value
// of T until the first successful Next, and again after exhaustion.
// Exhaustion is terminal and is not an error.
type Iterator[T any] interface {
	// Next advances the cursor and caches the produced element.
	// It returns false when no value is available at the source.
	Next() bool
	// Value returns the cached current element without side effects.
	Value() T
	// Equal reports whether two iterators of the same kind share backing
	// identity and position. Iterators of different kinds are never equal.
	Equal(other Iterator[T]) bool
	// Reset returns the iterator to its pre-iteration state.
	// The exact state is kind-specific:
	//   - slice: cursor on index 0, Value primed with the first element;
	//   - range: current back to start, Value exposes start, no advancing;
	//   - zip:   every source is reset, then one Next primes the first tuple;
	//   - filter/map: only the source is reset, the cached Value is left
	//     as-is and the caller must call Next again.
	Reset() error
	Category() Category
	// Closer releases the iterator state; adapters close their sources.
	// After the first call it must return ClosedIterator.
	io.Closer
}

// Validator is an optional probe for iterators that can report whether
// they are positioned on a valid element without advancing.
type Validator interface {
	Valid() bool
}

// IsValid probes it without advancing it.
// Iterators that do not implement Validator are reported as not valid.
func IsValid[T any](it Iterator[T]) bool {
	if v, ok := it.(Validator); ok {
		return v.Valid()
	}
	return false
}

// CmpFunc returns -1,0,1 respectively if a<b,a=b,a>b
type CmpFunc[T any] func(a, b T) int

// OrderedCmp is a CmpFunc over any ordered type.
func OrderedCmp[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
