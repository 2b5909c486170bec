package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Drop returns a view skipping the first min(n, size(v)) elements of v.
//
// Per the source specification, the skip is performed eagerly but only
// once: the first call to Iter()/ReverseIter() walks past the first n
// elements and caches the resulting starting point on the view value, so
// subsequent Iter() calls are O(1). Category and sizedness match v's,
// minus the dropped count.
func Drop[T any](v View[T], n int) View[T] {
	contract.Assertf(n >= 0, "Drop: n must be >= 0, got %d", n)

	if ra, ok := TryRandomAccess(v); ok {
		size := ra.Len()
		skip := n
		if skip > size {
			skip = size
		}
		return dropRandomAccessView[T]{src: ra, skip: skip}
	}

	size, sized := Len(v)
	skip := n
	if sized && skip > size {
		skip = size
	}
	_, reversible := TryReverse(v)
	base := &dropView[T]{src: v, n: n}

	switch {
	case reversible && sized:
		return dropSizedReversibleView[T]{dropReversibleView[T]{base}, size - skip}
	case reversible:
		return dropReversibleView[T]{base}
	case sized:
		return dropSizedView[T]{base, size - skip}
	default:
		return base
	}
}

// DropClosure partially applies Drop.
func DropClosure[T any](n int) Closure[T, T] {
	return func(v View[T]) View[T] { return Drop(v, n) }
}

// dropView caches the post-skip starting point the first time it is
// needed, shared between Iter and ReverseIter (a reverse traversal over a
// forward-only-skip cache still has to walk the whole remaining range, but
// the initial n-element skip itself is memoized).
type dropView[T any] struct {
	src     View[T]
	n       int
	cached  []T
	primed  bool
}

func (d *dropView[T]) prime() []T {
	if !d.primed {
		it := d.src.Iter()
		skipped := 0
		for skipped < d.n && it.Next() {
			skipped++
		}
		d.cached = collect[T](it, -1)
		d.primed = true
	}
	return d.cached
}

func (d *dropView[T]) Iter() Iterator[T] {
	return &sliceIterator[T]{items: d.prime()}
}

type dropSizedView[T any] struct {
	*dropView[T]
	size int
}

func (d dropSizedView[T]) Len() int { return d.size }

type dropReversibleView[T any] struct {
	*dropView[T]
}

func (d dropReversibleView[T]) ReverseIter() Iterator[T] {
	return &reverseSliceIterator[T]{items: d.prime()}
}

type dropSizedReversibleView[T any] struct {
	dropReversibleView[T]
	size int
}

func (d dropSizedReversibleView[T]) Len() int { return d.size }

// dropRandomAccessView is Drop's fast path over a RandomAccess+Sized
// source: no eager walk is needed at all, since every index is an O(1)
// offset from skip.
type dropRandomAccessView[T any] struct {
	src  RandomAccess[T]
	skip int
}

func (d dropRandomAccessView[T]) Iter() Iterator[T] {
	return &dropBoundedIterator[T]{src: d.src, skip: d.skip, pos: d.skip - 1}
}

func (d dropRandomAccessView[T]) ReverseIter() Iterator[T] {
	return &dropBoundedReverseIterator[T]{src: d.src, skip: d.skip, pos: d.src.Len()}
}

func (d dropRandomAccessView[T]) Len() int { return d.src.Len() - d.skip }

func (d dropRandomAccessView[T]) At(i int) T {
	contract.Assertf(i >= 0 && i < d.Len(), "Drop.At: index %d out of range [0,%d)", i, d.Len())
	return d.src.At(d.skip + i)
}

type dropBoundedIterator[T any] struct {
	src  RandomAccess[T]
	skip int
	pos  int
}

func (it *dropBoundedIterator[T]) Next() bool {
	it.pos++
	return it.pos < it.src.Len()
}

func (it *dropBoundedIterator[T]) Value() T { return it.src.At(it.pos) }

type dropBoundedReverseIterator[T any] struct {
	src  RandomAccess[T]
	skip int
	pos  int
}

func (it *dropBoundedReverseIterator[T]) Next() bool {
	it.pos--
	return it.pos >= it.skip
}

func (it *dropBoundedReverseIterator[T]) Value() T { return it.src.At(it.pos) }
