package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Take returns a view over the first min(n, size(v)) elements of v.
//
// If v is RandomAccess and Sized, the result is RandomAccess (and Sized)
// too, with a precomputed bounded length; otherwise the result is a
// forward/Reversible (matching v) view driven by a remaining-count cursor,
// as described in the source specification's "take (count-based)" row.
func Take[T any](v View[T], n int) View[T] {
	contract.Assertf(n >= 0, "Take: n must be >= 0, got %d", n)

	if ra, ok := TryRandomAccess(v); ok {
		size := ra.Len()
		bound := n
		if bound > size {
			bound = size
		}
		return takeRandomAccessView[T]{src: ra, n: bound}
	}

	size, sized := Len(v)
	if sized && n < size {
		size = n
	}
	_, reversible := TryReverse(v)
	base := takeView[T]{src: v, n: n}

	switch {
	case reversible && sized:
		return takeSizedReversibleView[T]{takeReversibleView[T]{base}, size}
	case reversible:
		return takeReversibleView[T]{base}
	case sized:
		return takeSizedView[T]{base, size}
	default:
		return base
	}
}

// TakeClosure partially applies Take.
func TakeClosure[T any](n int) Closure[T, T] {
	return func(v View[T]) View[T] { return Take(v, n) }
}

type takeView[T any] struct {
	src View[T]
	n   int
}

func (t takeView[T]) Iter() Iterator[T] {
	return &takeIterator[T]{upstream: t.src.Iter(), remaining: t.n}
}

type takeIterator[T any] struct {
	upstream  Iterator[T]
	remaining int
}

func (it *takeIterator[T]) Next() bool {
	if it.remaining <= 0 {
		return false
	}
	if !it.upstream.Next() {
		it.remaining = 0
		return false
	}
	it.remaining--
	return true
}

func (it *takeIterator[T]) Value() T { return it.upstream.Value() }

// takeSizedView is Take over a Sized-but-not-RandomAccess, not-Reversible
// source: forward only, but its size is known up front (min(n, size(v))).
type takeSizedView[T any] struct {
	takeView[T]
	size int
}

func (t takeSizedView[T]) Len() int { return t.size }

// takeReversibleView supports reverse iteration by first materializing how
// many elements actually exist (at most n), which requires a forward pass
// to count when the source isn't Sized; this mirrors the source
// specification's rule that a sized bidirectional adaptor whose upstream
// end isn't O(1) reachable performs the O(n) walk once, at end()
// construction, never during iteration.
type takeReversibleView[T any] struct {
	takeView[T]
}

func (t takeReversibleView[T]) ReverseIter() Iterator[T] {
	items := collect[T](takeView[T]{t.src, t.n}.Iter(), -1)
	return &reverseSliceIterator[T]{items: items}
}

// takeSizedReversibleView adds a known Len to takeReversibleView when the
// source is both Sized and Reversible.
type takeSizedReversibleView[T any] struct {
	takeReversibleView[T]
	size int
}

func (t takeSizedReversibleView[T]) Len() int { return t.size }

// takeRandomAccessView is Take's fast path over a RandomAccess+Sized
// source: the bounded end is computed up front (n is already clamped to
// size by Take), so iteration needs nothing but an index.
type takeRandomAccessView[T any] struct {
	src RandomAccess[T]
	n   int
}

func (t takeRandomAccessView[T]) Iter() Iterator[T] {
	return &takeBoundedIterator[T]{src: t.src, limit: t.n, pos: -1}
}

func (t takeRandomAccessView[T]) ReverseIter() Iterator[T] {
	return &takeBoundedReverseIterator[T]{src: t.src, pos: t.n}
}

func (t takeRandomAccessView[T]) Len() int { return t.n }

func (t takeRandomAccessView[T]) At(i int) T {
	contract.Assertf(i >= 0 && i < t.n, "Take.At: index %d out of range [0,%d)", i, t.n)
	return t.src.At(i)
}

type takeBoundedIterator[T any] struct {
	src   RandomAccess[T]
	limit int
	pos   int
}

func (it *takeBoundedIterator[T]) Next() bool {
	it.pos++
	return it.pos < it.limit
}

func (it *takeBoundedIterator[T]) Value() T { return it.src.At(it.pos) }

type takeBoundedReverseIterator[T any] struct {
	src RandomAccess[T]
	pos int
}

func (it *takeBoundedReverseIterator[T]) Next() bool {
	it.pos--
	return it.pos >= 0
}

func (it *takeBoundedReverseIterator[T]) Value() T { return it.src.At(it.pos) }
