package go_itersort

// EmptyIterator is the inert iterator: it produces nothing and all of its
// operations are safe no-ops. Constructors return it in place of a partially
// initialized iterator when they are given an invalid configuration.
type EmptyIterator[T any] struct{}

func NewEmptyIterator[T any]() Iterator[T] {
	return &EmptyIterator[T]{}
}

func (e *EmptyIterator[T]) Next() bool { return false }

func (e *EmptyIterator[T]) Value() T {
	var zero T
	return zero
}

func (e *EmptyIterator[T]) Valid() bool { return false }

func (e *EmptyIterator[T]) Equal(other Iterator[T]) bool {
	_, ok := other.(*EmptyIterator[T])
	return ok
}

func (e *EmptyIterator[T]) Reset() error { return nil }

func (e *EmptyIterator[T]) Category() Category { return CategoryInput }

// Close is a safe no-op even when called repeatedly.
func (e *EmptyIterator[T]) Close() error { return nil }
