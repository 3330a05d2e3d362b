package go_itersort

import "errors"

// ZipIterator advances all of its sources in lockstep and yields a tuple
// with their current elements. It exhausts permanently the moment any one
// source exhausts, so it yields exactly min(len(sources...)) tuples and
// never a ragged one.
// It takes ownership of the sources: the caller must not use or close them
// independently after zipping.
type ZipIterator[T any] struct {
	sources   []Iterator[T]
	srcValid  []bool
	value     []T
	exhausted bool
	isClosed  bool
}

func NewZipIterator[T any](sources ...Iterator[T]) Iterator[[]T] {
	srcValid := make([]bool, len(sources))
	for i := range srcValid {
		srcValid[i] = true
	}
	return &ZipIterator[T]{
		sources:  sources,
		srcValid: srcValid,
	}
}

func (z *ZipIterator[T]) Next() bool {
	if z.exhausted || len(z.sources) == 0 {
		z.value = nil
		z.exhausted = true
		return false
	}
	// the tuple in progress is discarded if any source fails to advance
	tuple := make([]T, 0, len(z.sources))
	for i, src := range z.sources {
		if !src.Next() {
			z.srcValid[i] = false
			z.exhausted = true
			z.value = nil
			return false
		}
		tuple = append(tuple, src.Value())
	}
	z.value = tuple
	return true
}

func (z *ZipIterator[T]) Value() []T { return z.value }

func (z *ZipIterator[T]) Valid() bool { return z.value != nil }

func (z *ZipIterator[T]) Equal(other Iterator[[]T]) bool {
	o, ok := other.(*ZipIterator[T])
	if !ok {
		return false
	}
	if len(z.sources) != len(o.sources) {
		return false
	}
	for i := range z.sources {
		if !z.sources[i].Equal(o.sources[i]) {
			return false
		}
	}
	return true
}

// Reset resets every source and then primes the first tuple with one Next.
func (z *ZipIterator[T]) Reset() error {
	if z.isClosed {
		return ClosedIterator
	}
	for i, src := range z.sources {
		if err := src.Reset(); err != nil {
			return err
		}
		z.srcValid[i] = true
	}
	z.exhausted = false
	z.value = nil
	z.Next()
	return nil
}

func (z *ZipIterator[T]) Category() Category { return CategoryZip }

func (z *ZipIterator[T]) Close() error {
	if z.isClosed {
		return ClosedIterator
	}
	z.isClosed = true
	var err error
	for _, src := range z.sources {
		if cerr := src.Close(); cerr != nil && !errors.Is(cerr, ClosedIterator) && err == nil {
			err = cerr
		}
	}
	z.value = nil
	return err
}
