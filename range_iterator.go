package go_itersort

import "golang.org/x/exp/constraints"

// RangeIterator generates the arithmetic sequence start, start+step, ...
// up to but excluding end, without materializing any storage.
// It is a single-pass iterator, re-iteration requires Reset.
type RangeIterator[T constraints.Signed] struct {
	start    T
	current  T
	end      T // exclusive
	step     T // nonzero
	value    T
	valid    bool
	isClosed bool
}

// NewRangeIterator returns an iterator over [start, end) with the given step.
// A zero step is an invalid configuration and yields the inert empty iterator.
func NewRangeIterator[T constraints.Signed](start, end, step T) Iterator[T] {
	if step == 0 {
		return NewEmptyIterator[T]()
	}
	return &RangeIterator[T]{
		start:   start,
		current: start - step, // so that the first Next lands on start
		end:     end,
		step:    step,
	}
}

func (r *RangeIterator[T]) Next() bool {
	next := r.current + r.step
	if (r.step > 0 && next >= r.end) || (r.step < 0 && next <= r.end) {
		var zero T
		r.value = zero
		r.valid = false
		return false
	}
	r.current = next
	r.value = next
	r.valid = true
	return true
}

func (r *RangeIterator[T]) Value() T { return r.value }

func (r *RangeIterator[T]) Valid() bool { return r.valid }

func (r *RangeIterator[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*RangeIterator[T])
	if !ok {
		return false
	}
	return r.current == o.current && r.end == o.end && r.step == o.step
}

// Reset moves the cursor back to start and exposes it through Value
// directly, without stepping: the Next after a Reset produces start+step.
func (r *RangeIterator[T]) Reset() error {
	if r.isClosed {
		return ClosedIterator
	}
	r.current = r.start
	r.value = r.start
	r.valid = true
	return nil
}

func (r *RangeIterator[T]) Category() Category { return CategoryInput }

func (r *RangeIterator[T]) Close() error {
	if r.isClosed {
		return ClosedIterator
	}
	r.isClosed = true
	r.valid = false
	return nil
}
