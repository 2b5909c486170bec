package golazy

import "github.com/kaaserne/golazy/internal/contract"

// TakeEvery keeps every nth element starting at the first (offset 0).
// Sized iff the source is Sized, with size = ceil(sourceSize / n).
// RandomAccess iff the source is RandomAccess.
func TakeEvery[T any](v View[T], n int) View[T] {
	contract.Assertf(n > 0, "TakeEvery: n must be positive, got %d", n)
	if ra, ok := TryRandomAccess(v); ok {
		return takeEveryRandomAccessView[T]{src: ra, n: n}
	}
	base := takeEveryView[T]{src: v, n: n}
	if size, sized := Len(v); sized {
		return takeEverySizedView[T]{base, (size + n - 1) / n}
	}
	return base
}

type takeEveryView[T any] struct {
	src View[T]
	n   int
}

func (t takeEveryView[T]) Iter() Iterator[T] {
	return &takeEveryIterator[T]{src: t.src.Iter(), n: t.n}
}

type takeEveryIterator[T any] struct {
	src Iterator[T]
	n   int
	v   T
}

func (it *takeEveryIterator[T]) Next() bool {
	if !it.src.Next() {
		return false
	}
	it.v = it.src.Value()
	for i := 1; i < it.n; i++ {
		if !it.src.Next() {
			break
		}
	}
	return true
}

func (it *takeEveryIterator[T]) Value() T { return it.v }

type takeEverySizedView[T any] struct {
	takeEveryView[T]
	size int
}

func (t takeEverySizedView[T]) Len() int { return t.size }

type takeEveryRandomAccessView[T any] struct {
	src RandomAccess[T]
	n   int
}

func (t takeEveryRandomAccessView[T]) Iter() Iterator[T] {
	return &takeEveryIterator[T]{src: t.src.Iter(), n: t.n}
}

func (t takeEveryRandomAccessView[T]) Len() int {
	size := t.src.Len()
	return (size + t.n - 1) / t.n
}

func (t takeEveryRandomAccessView[T]) At(i int) T {
	contract.Assertf(i >= 0 && i < t.Len(), "TakeEvery.At: index %d out of range", i)
	return t.src.At(i * t.n)
}
