package golazy

// Enumerate pairs each element with its zero-based index, mirroring the
// source specification's enumerate adaptor. Preserves Sized and
// RandomAccess (indices are trivially derivable); preserves Reversible
// only when the source is also Sized, since reverse iteration needs to
// know the starting index.
func Enumerate[T any](v View[T]) View[Pair[int, T]] {
	size, sized := Len(v)
	ra, random := TryRandomAccess(v)
	_, rev := TryReverse(v)

	if random {
		return enumerateRandomAccessView[T]{ra}
	}
	base := enumerateView[T]{src: v}
	if sized {
		if rev {
			return enumerateSizedReversibleView[T]{enumerateReversibleView[T]{base, size}, size}
		}
		return enumerateSizedView[T]{base, size}
	}
	return base
}

type enumerateView[T any] struct {
	src View[T]
}

func (e enumerateView[T]) Iter() Iterator[Pair[int, T]] {
	return &enumerateIterator[T]{src: e.src.Iter()}
}

type enumerateIterator[T any] struct {
	src Iterator[T]
	idx int
	v   Pair[int, T]
}

func (it *enumerateIterator[T]) Next() bool {
	if !it.src.Next() {
		return false
	}
	it.v = Pair[int, T]{First: it.idx, Second: it.src.Value()}
	it.idx++
	return true
}

func (it *enumerateIterator[T]) Value() Pair[int, T] { return it.v }

type enumerateSizedView[T any] struct {
	enumerateView[T]
	size int
}

func (e enumerateSizedView[T]) Len() int { return e.size }

type enumerateReversibleView[T any] struct {
	enumerateView[T]
	size int
}

func (e enumerateReversibleView[T]) ReverseIter() Iterator[Pair[int, T]] {
	rev, _ := TryReverse(e.src)
	return &reverseEnumerateIterator[T]{src: rev, idx: e.size - 1}
}

type reverseEnumerateIterator[T any] struct {
	src Iterator[T]
	idx int
	v   Pair[int, T]
}

func (it *reverseEnumerateIterator[T]) Next() bool {
	if !it.src.Next() {
		return false
	}
	it.v = Pair[int, T]{First: it.idx, Second: it.src.Value()}
	it.idx--
	return true
}

func (it *reverseEnumerateIterator[T]) Value() Pair[int, T] { return it.v }

type enumerateSizedReversibleView[T any] struct {
	enumerateReversibleView[T]
	size int
}

func (e enumerateSizedReversibleView[T]) Len() int { return e.size }

type enumerateRandomAccessView[T any] struct {
	src RandomAccess[T]
}

func (e enumerateRandomAccessView[T]) Iter() Iterator[Pair[int, T]] {
	return &enumerateIterator[T]{src: e.src.Iter()}
}

func (e enumerateRandomAccessView[T]) Len() int { return e.src.Len() }

func (e enumerateRandomAccessView[T]) At(i int) Pair[int, T] {
	return Pair[int, T]{First: i, Second: e.src.At(i)}
}

func (e enumerateRandomAccessView[T]) ReverseIter() Iterator[Pair[int, T]] {
	return &reverseEnumerateRandomAccessIterator[T]{src: e.src, idx: e.src.Len() - 1}
}

type reverseEnumerateRandomAccessIterator[T any] struct {
	src RandomAccess[T]
	idx int
	v   Pair[int, T]
}

func (it *reverseEnumerateRandomAccessIterator[T]) Next() bool {
	if it.idx < 0 {
		return false
	}
	it.v = Pair[int, T]{First: it.idx, Second: it.src.At(it.idx)}
	it.idx--
	return true
}

func (it *reverseEnumerateRandomAccessIterator[T]) Value() Pair[int, T] { return it.v }
