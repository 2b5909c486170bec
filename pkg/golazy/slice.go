package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Slice restricts the view to the half-open range [from, to), the
// composition of Drop(from) followed by Take(to-from). Provided as a
// single adaptor (rather than requiring callers to chain Drop and Take
// themselves) because it can skip to from directly on a RandomAccess
// source instead of walking it.
func Slice[T any](v View[T], from, to int) View[T] {
	contract.Assertf(from >= 0 && to >= from, "Slice: invalid range [%d, %d)", from, to)
	if ra, ok := TryRandomAccess(v); ok {
		size := ra.Len()
		end := to
		if end > size {
			end = size
		}
		start := from
		if start > end {
			start = end
		}
		return sliceRandomAccessView[T]{src: ra, from: start, to: end}
	}
	return Take[T](Drop[T](v, from), to-from)
}

type sliceRandomAccessView[T any] struct {
	src  RandomAccess[T]
	from int
	to   int
}

func (s sliceRandomAccessView[T]) Len() int { return s.to - s.from }

func (s sliceRandomAccessView[T]) At(i int) T {
	contract.Assertf(i >= 0 && i < s.Len(), "Slice.At: index %d out of range", i)
	return s.src.At(s.from + i)
}

func (s sliceRandomAccessView[T]) Iter() Iterator[T] {
	return &sliceIteratorT[T]{s: s}
}

func (s sliceRandomAccessView[T]) ReverseIter() Iterator[T] {
	return &reverseSliceIteratorT[T]{s: s, pos: s.Len()}
}

type sliceIteratorT[T any] struct {
	s       sliceRandomAccessView[T]
	pos     int
	started bool
}

func (it *sliceIteratorT[T]) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.pos++
	}
	return it.pos < it.s.Len()
}

func (it *sliceIteratorT[T]) Value() T { return it.s.At(it.pos) }

type reverseSliceIteratorT[T any] struct {
	s   sliceRandomAccessView[T]
	pos int
}

func (it *reverseSliceIteratorT[T]) Next() bool {
	it.pos--
	return it.pos >= 0
}

func (it *reverseSliceIteratorT[T]) Value() T { return it.s.At(it.pos) }
