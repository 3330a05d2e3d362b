package go_itersort

// SliceIterator implements Iterator as a view over a static slice.
//
// It addresses the backing slice through a table of element pointers
// rather than copying values: Sort permutes this table, the caller's
// memory never moves. The caller must keep the backing slice alive for
// the lifetime of the iterator and must not mutate it mid-iteration.
type SliceIterator[T any] struct {
	elems    []*T // elems[i] points into the backing slice
	backing  *T   // identity of the backing slice, nil when empty
	index    int  // -1 means before the first element
	value    T
	valid    bool
	isClosed bool
}

func NewSliceIterator[T any](values []T) *SliceIterator[T] {
	elems := make([]*T, len(values))
	for i := range values {
		elems[i] = &values[i]
	}
	s := &SliceIterator[T]{
		elems: elems,
		index: -1,
	}
	if len(values) > 0 {
		s.backing = &values[0]
	}
	return s
}

// NewStringSliceIterator is a convenience constructor for string slices.
func NewStringSliceIterator(values []string) *SliceIterator[string] {
	return NewSliceIterator(values)
}

func (s *SliceIterator[T]) Next() bool {
	if s.index == -1 && len(s.elems) > 0 {
		s.index = 0
		s.value = *s.elems[0]
		s.valid = true
		return true
	}
	if s.index+1 < len(s.elems) {
		s.index++
		s.value = *s.elems[s.index]
		s.valid = true
		return true
	}
	var zero T
	s.value = zero
	s.valid = false
	return false
}

func (s *SliceIterator[T]) Value() T { return s.value }

func (s *SliceIterator[T]) Valid() bool { return s.valid }

func (s *SliceIterator[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*SliceIterator[T])
	if !ok {
		return false
	}
	return s.index == o.index && s.backing == o.backing
}

// Reset puts the cursor on index 0 with Value primed to the first element.
// Note the asymmetry with construction, which leaves the cursor before
// the first element until Next is called.
func (s *SliceIterator[T]) Reset() error {
	if s.isClosed {
		return ClosedIterator
	}
	if len(s.elems) == 0 {
		return nil
	}
	s.index = 0
	s.value = *s.elems[0]
	s.valid = true
	return nil
}

func (s *SliceIterator[T]) Category() Category { return CategoryForward }

func (s *SliceIterator[T]) Close() error {
	if s.isClosed {
		return ClosedIterator
	}
	s.isClosed = true
	s.elems = nil
	s.valid = false
	return nil
}
