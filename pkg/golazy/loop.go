package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Loop repeats the source view forever (times < 0) or exactly times
// times. An empty source makes Loop produce nothing rather than spin;
// this is a deliberate divergence from undefined behavior toward a safe,
// well-defined result. Loop is never Sized for the infinite case; for a
// finite repeat count it is Sized iff the source is Sized.
func Loop[T any](v View[T], times int) View[T] {
	base := loopView[T]{src: v, times: times}
	if times >= 0 {
		if size, sized := Len(v); sized {
			return loopSizedView[T]{base, size * times}
		}
	}
	return base
}

type loopView[T any] struct {
	src   View[T]
	times int
}

func (l loopView[T]) Iter() Iterator[T] {
	return &loopIterator[T]{src: l.src, times: l.times}
}

type loopIterator[T any] struct {
	src   View[T]
	times int
	round int
	cur   Iterator[T]
	any   bool
	v     T
}

func (it *loopIterator[T]) Next() bool {
	for {
		if it.cur == nil {
			if it.times >= 0 && it.round >= it.times {
				return false
			}
			it.cur = it.src.Iter()
			it.round++
		}
		if it.cur.Next() {
			it.v = it.cur.Value()
			it.any = true
			return true
		}
		if !it.any && it.times < 0 {
			// Source produced nothing on this pass; an empty source would
			// otherwise spin forever, so Loop bails out instead.
			return false
		}
		it.cur = nil
	}
}

func (it *loopIterator[T]) Value() T { return it.v }

type loopSizedView[T any] struct {
	loopView[T]
	size int
}

func (l loopSizedView[T]) Len() int { return l.size }

// Rotate cyclically shifts the source so iteration begins at index n
// (negative n counts from the end). Requires the source to be Sized;
// preserves RandomAccess when the source is RandomAccess.
func Rotate[T any](v View[T], n int) View[T] {
	size, sized := Len(v)
	contract.Assertf(sized, "Rotate: source must be Sized")
	if size == 0 {
		return v
	}
	n = ((n % size) + size) % size
	if ra, ok := TryRandomAccess(v); ok {
		return rotateRandomAccessView[T]{src: ra, offset: n}
	}
	return rotateView[T]{src: v, offset: n, size: size}
}

type rotateView[T any] struct {
	src    View[T]
	offset int
	size   int
}

func (r rotateView[T]) Iter() Iterator[T] {
	return &rotateIterator[T]{src: r.src, offset: r.offset, size: r.size}
}

func (r rotateView[T]) Len() int { return r.size }

type rotateIterator[T any] struct {
	src    View[T]
	offset int
	size   int
	seen   int
	cur    Iterator[T]
}

func (it *rotateIterator[T]) Next() bool {
	if it.seen >= it.size {
		return false
	}
	if it.cur == nil {
		it.cur = it.src.Iter()
		for i := 0; i < it.offset; i++ {
			it.cur.Next()
		}
	}
	if !it.cur.Next() {
		it.cur = it.src.Iter()
		it.cur.Next()
	}
	it.seen++
	return true
}

func (it *rotateIterator[T]) Value() T {
	return it.cur.Value()
}

type rotateRandomAccessView[T any] struct {
	src    RandomAccess[T]
	offset int
}

func (r rotateRandomAccessView[T]) Iter() Iterator[T] {
	return &rotateRandomAccessIterator[T]{src: r.src, offset: r.offset}
}

func (r rotateRandomAccessView[T]) Len() int { return r.src.Len() }

func (r rotateRandomAccessView[T]) At(i int) T {
	size := r.src.Len()
	return r.src.At((i + r.offset) % size)
}

type rotateRandomAccessIterator[T any] struct {
	src     RandomAccess[T]
	offset  int
	pos     int
	started bool
}

func (it *rotateRandomAccessIterator[T]) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.pos++
	}
	return it.pos < it.src.Len()
}

func (it *rotateRandomAccessIterator[T]) Value() T {
	size := it.src.Len()
	return it.src.At((it.pos + it.offset) % size)
}
