package go_itersort

// Algorithms expressed purely in terms of the Iterator contract,
// so they work uniformly across all iterator kinds.

// Advance calls Next n times.
// It returns false the moment the iterator exhausts, leaving it at the
// point of failure (no rollback).
func Advance[T any](it Iterator[T], n int) bool {
	if it == nil {
		return false
	}
	for i := 0; i < n; i++ {
		if !it.Next() {
			return false
		}
	}
	return true
}

// ToSlice drains the iterator into a freshly allocated slice.
// The iterator is consumed, re-iteration requires Reset.
func ToSlice[T any](it Iterator[T]) (dump []T) {
	for it.Next() {
		dump = append(dump, it.Value())
	}
	return
}

// ForEach applies fn to every remaining element.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for it.Next() {
		fn(it.Value())
	}
}

// Find returns the first element for which cmp(element, value) == 0,
// or the zero value and false when the iterator exhausts without a match.
func Find[T any](it Iterator[T], value T, cmp CmpFunc[T]) (T, bool) {
	for it.Next() {
		if v := it.Value(); cmp(v, value) == 0 {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether some element satisfies pred. It short-circuits.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	for it.Next() {
		if pred(it.Value()) {
			return true
		}
	}
	return false
}

// All reports whether every remaining element satisfies pred.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	for it.Next() {
		if !pred(it.Value()) {
			return false
		}
	}
	return true
}
