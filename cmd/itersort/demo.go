package main

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"

	itersort "github.com/lezhnev74/go-itersort"
)

// runDemo exercises every iterator kind with sample data and prints the results.
func runDemo(cfg Config, logger *zap.Logger) error {

	// 1. Slice iterators
	ints := itersort.NewSliceIterator([]int{10, 20, 30, 40})
	fmt.Printf("ints: %s\n", join(itersort.ToSlice[int](ints)))
	strs := itersort.NewStringSliceIterator([]string{"Hola", "Mundo", "de", "Iteradores"})
	fmt.Printf("strings: %s\n", join(itersort.ToSlice[string](strs)))
	if err := closeAll(ints.Close, strs.Close); err != nil {
		return err
	}

	// 2. Range iterator
	rng := itersort.NewRangeIterator(cfg.RangeStart, cfg.RangeEnd, cfg.RangeStep)
	fmt.Printf("range(%d,%d,%d): %s\n",
		cfg.RangeStart, cfg.RangeEnd, cfg.RangeStep, join(itersort.ToSlice(rng)))
	if err := rng.Close(); err != nil {
		return xerrors.Errorf("demo: %w", err)
	}

	// 3. Filtering iterator (even numbers)
	evens := itersort.NewFilteringIterator(
		itersort.NewSliceIterator([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		func(v int) bool { return v%2 == 0 },
	)
	fmt.Printf("filter even: %s\n", join(itersort.ToSlice(evens)))

	// 4. Mapping iterator (squares)
	squares := itersort.NewMappingIterator(
		itersort.NewSliceIterator([]int{1, 2, 3, 4, 5}),
		func(v int) int { return v * v },
	)
	fmt.Printf("map square: %s\n", join(itersort.ToSlice(squares)))

	// 5. Zip iterator: stops at the shortest source
	zip := itersort.NewZipIterator[int](
		itersort.NewSliceIterator([]int{1, 2, 3}),
		itersort.NewSliceIterator([]int{4, 5, 6, 7}),
		itersort.NewSliceIterator([]int{7, 8, 9}),
	)
	fmt.Print("zip: ")
	itersort.ForEach(zip, func(tuple []int) {
		fmt.Printf("%v ", tuple)
	})
	fmt.Println()

	// 6. Generic utilities on a fresh slice iterator
	it := itersort.NewSliceIterator([]int{5, 10, 15, 20, 25})
	itersort.Advance[int](it, 2)
	fmt.Printf("after advancing by 2: %d\n", it.Value())
	if err := it.Reset(); err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	fmt.Printf("after reset: %d\n", it.Value())

	found, ok := itersort.Find(
		itersort.NewSliceIterator([]int{5, 10, 15, 20, 25}),
		15, itersort.OrderedCmp[int])
	fmt.Printf("find 15: %d (found=%v)\n", found, ok)

	anyNeg := itersort.Any(
		itersort.NewSliceIterator([]int{5, 10, 15}),
		func(v int) bool { return v < 0 })
	allPos := itersort.All(
		itersort.NewSliceIterator([]int{5, 10, 15}),
		func(v int) bool { return v > 0 })
	fmt.Printf("any negative: %v, all positive: %v\n", anyNeg, allPos)

	if err := closeAll(evens.Close, squares.Close, zip.Close, it.Close); err != nil {
		return err
	}

	logger.Info("demo finished")
	return nil
}

// runSort generates random ints, sorts them in place and prints before/after.
func runSort(cfg Config, logger *zap.Logger) error {

	// the worked example first
	example := []int{10, 20, 30, 40, 25, 15, 5}
	it := itersort.NewSliceIterator(example)
	fmt.Printf("before: %s\n", join(itersort.ToSlice[int](it)))
	itersort.Sort(it, itersort.OrderedCmp[int])

	sorted := []int{it.Value()} // Sort leaves the cursor on the smallest element
	sorted = append(sorted, itersort.ToSlice[int](it)...)
	fmt.Printf("after:  %s\n", join(sorted))
	if err := it.Close(); err != nil {
		return xerrors.Errorf("sort: %w", err)
	}

	// then the random run
	r := rand.New(rand.NewSource(cfg.Seed))
	values := make([]int, cfg.SortSize)
	for i := range values {
		values[i] = r.Intn(cfg.SortSize * 10)
	}

	rit := itersort.NewSliceIterator(values)
	start := time.Now()
	itersort.Sort(rit, itersort.OrderedCmp[int])
	logger.Info("sorted random ints",
		zap.Int("n", cfg.SortSize),
		zap.Uint64("seed", cfg.Seed),
		zap.Duration("took", time.Since(start)))

	prev := rit.Value()
	for rit.Next() {
		if rit.Value() < prev {
			return xerrors.Errorf("sort: order violated at value %d", rit.Value())
		}
		prev = rit.Value()
	}
	fmt.Printf("%d random ints sorted\n", cfg.SortSize)

	return rit.Close()
}

func join[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, " ")
}

func closeAll(closers ...func() error) error {
	for _, c := range closers {
		if err := c(); err != nil {
			return xerrors.Errorf("demo: %w", err)
		}
	}
	return nil
}
