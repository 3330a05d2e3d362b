package go_itersort

// FilteringIterator filters values from the inner iterator.
// It takes ownership of the source: the caller must not use or close the
// source independently after wrapping it.
type FilteringIterator[T any] struct {
	innerIterator Iterator[T]
	filter        func(T) bool
	value         T
	valid         bool
	isClosed      bool
}

func NewFilteringIterator[T any](inner Iterator[T], filter func(T) bool) Iterator[T] {
	return &FilteringIterator[T]{
		innerIterator: inner,
		filter:        filter,
	}
}

func (f *FilteringIterator[T]) Next() bool {
	for f.innerIterator.Next() {
		v := f.innerIterator.Value()
		if f.filter(v) {
			f.value = v
			f.valid = true
			return true
		}
	}
	var zero T
	f.value = zero
	f.valid = false
	return false
}

func (f *FilteringIterator[T]) Value() T { return f.value }

func (f *FilteringIterator[T]) Valid() bool {
	if v, ok := f.innerIterator.(Validator); ok {
		return v.Valid()
	}
	return f.valid
}

func (f *FilteringIterator[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*FilteringIterator[T])
	if !ok {
		return false
	}
	return f.innerIterator.Equal(o.innerIterator)
}

// Reset resets only the source. The cached Value is left untouched,
// the caller must call Next to produce the first matching element again.
func (f *FilteringIterator[T]) Reset() error {
	if f.isClosed {
		return ClosedIterator
	}
	return f.innerIterator.Reset()
}

func (f *FilteringIterator[T]) Category() Category { return CategoryFilter }

func (f *FilteringIterator[T]) Close() error {
	if f.isClosed {
		return ClosedIterator
	}
	f.isClosed = true
	return f.innerIterator.Close()
}
