package go_itersort

// MappingIterator maps values from the inner iterator.
// It takes ownership of the source: the caller must not use or close the
// source independently after wrapping it.
type MappingIterator[InnerT any, T any] struct {
	innerIterator Iterator[InnerT]
	mf            func(InnerT) T
	value         T
	valid         bool
	isClosed      bool
}

func NewMappingIterator[InnerT any, T any](inner Iterator[InnerT], mf func(InnerT) T) Iterator[T] {
	return &MappingIterator[InnerT, T]{
		innerIterator: inner,
		mf:            mf,
	}
}

func (m *MappingIterator[InnerT, T]) Next() bool {
	if m.innerIterator.Next() {
		m.value = m.mf(m.innerIterator.Value())
		m.valid = true
		return true
	}
	var zero T
	m.value = zero
	m.valid = false
	return false
}

func (m *MappingIterator[InnerT, T]) Value() T { return m.value }

func (m *MappingIterator[InnerT, T]) Valid() bool {
	if v, ok := m.innerIterator.(Validator); ok {
		return v.Valid()
	}
	return m.valid
}

func (m *MappingIterator[InnerT, T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*MappingIterator[InnerT, T])
	if !ok {
		return false
	}
	return m.innerIterator.Equal(o.innerIterator)
}

// Reset resets only the source. The cached Value is left untouched,
// the caller must call Next to produce the first transformed element again.
func (m *MappingIterator[InnerT, T]) Reset() error {
	if m.isClosed {
		return ClosedIterator
	}
	return m.innerIterator.Reset()
}

func (m *MappingIterator[InnerT, T]) Category() Category { return CategoryMap }

func (m *MappingIterator[InnerT, T]) Close() error {
	if m.isClosed {
		return ClosedIterator
	}
	m.isClosed = true
	return m.innerIterator.Close()
}
