package golazy

import "github.com/kaaserne/golazy/internal/contract"

// CartesianProduct2 yields every (a, b) pair in lexicographic order with b
// (the last input) varying fastest — odometer order, per the source
// specification. Sized iff both inputs are Sized (size = sizeA * sizeB).
// RandomAccess iff both inputs are RandomAccess and Sized.
func CartesianProduct2[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	raA, randomA := TryRandomAccess(a)
	raB, randomB := TryRandomAccess(b)

	if randomA && randomB {
		return cartesian2RandomAccessView[A, B]{a: raA, b: raB}
	}
	base := cartesian2View[A, B]{a: a, b: b}
	if sizedA && sizedB {
		return cartesian2SizedView[A, B]{base, sizeA * sizeB}
	}
	return base
}

type cartesian2View[A, B any] struct {
	a View[A]
	b View[B]
}

func (c cartesian2View[A, B]) Iter() Iterator[Pair[A, B]] {
	return &cartesian2Iterator[A, B]{a: c.a, b: c.b}
}

// cartesian2Iterator holds the current position of each dimension plus a
// stored begin for the innermost (fastest-varying) dimension so it can
// reset on carry, matching the source specification's "per-input stored
// begin" state.
type cartesian2Iterator[A, B any] struct {
	a      View[A]
	b      View[B]
	aIt    Iterator[A]
	bIt    Iterator[B]
	curA   A
	v      Pair[A, B]
	started bool
}

func (it *cartesian2Iterator[A, B]) Next() bool {
	if !it.started {
		it.started = true
		it.aIt = it.a.Iter()
		if !it.aIt.Next() {
			return false
		}
		it.curA = it.aIt.Value()
		it.bIt = it.b.Iter()
		if !it.bIt.Next() {
			return false
		}
		it.v = Pair[A, B]{First: it.curA, Second: it.bIt.Value()}
		return true
	}
	if it.bIt.Next() {
		it.v = Pair[A, B]{First: it.curA, Second: it.bIt.Value()}
		return true
	}
	// Carry: advance the outer dimension, reset the inner one to its begin.
	if !it.aIt.Next() {
		return false
	}
	it.curA = it.aIt.Value()
	it.bIt = it.b.Iter()
	if !it.bIt.Next() {
		return false
	}
	it.v = Pair[A, B]{First: it.curA, Second: it.bIt.Value()}
	return true
}

func (it *cartesian2Iterator[A, B]) Value() Pair[A, B] { return it.v }

type cartesian2SizedView[A, B any] struct {
	cartesian2View[A, B]
	size int
}

func (c cartesian2SizedView[A, B]) Len() int { return c.size }

// cartesian2RandomAccessView supports O(1) indexed access: for offset k,
// the position in each dimension is found by successive division with the
// product of right-side sizes (here, just sizeB), per the source
// specification.
type cartesian2RandomAccessView[A, B any] struct {
	a RandomAccess[A]
	b RandomAccess[B]
}

func (c cartesian2RandomAccessView[A, B]) Iter() Iterator[Pair[A, B]] {
	return &cartesian2Iterator[A, B]{a: c.a, b: c.b}
}

func (c cartesian2RandomAccessView[A, B]) Len() int {
	return c.a.Len() * c.b.Len()
}

func (c cartesian2RandomAccessView[A, B]) At(k int) Pair[A, B] {
	sizeB := c.b.Len()
	contract.Assertf(sizeB > 0 && k >= 0 && k < c.a.Len()*sizeB, "CartesianProduct2.At: index %d out of range", k)
	i, j := k/sizeB, k%sizeB
	return Pair[A, B]{First: c.a.At(i), Second: c.b.At(j)}
}

func (c cartesian2RandomAccessView[A, B]) ReverseIter() Iterator[Pair[A, B]] {
	return &cartesian2ReverseIterator[A, B]{v: c, pos: c.Len()}
}

type cartesian2ReverseIterator[A, B any] struct {
	v   cartesian2RandomAccessView[A, B]
	pos int
}

func (it *cartesian2ReverseIterator[A, B]) Next() bool {
	it.pos--
	return it.pos >= 0
}

func (it *cartesian2ReverseIterator[A, B]) Value() Pair[A, B] { return it.v.At(it.pos) }

// CartesianProductN is the homogeneous, arbitrary-arity form: every input
// shares element type T, and each emitted element is a []T of length
// len(views), in the same odometer order (the last view in views varies
// fastest). Sized iff every view is Sized.
func CartesianProductN[T any](views ...View[T]) View[[]T] {
	base := cartesianNView[T]{views: views}
	size := 1
	for _, v := range views {
		n, ok := Len(v)
		if !ok {
			return base
		}
		size *= n
	}
	return cartesianNSizedView[T]{base, size}
}

type cartesianNView[T any] struct {
	views []View[T]
}

func (c cartesianNView[T]) Iter() Iterator[[]T] {
	return &cartesianNIterator[T]{views: c.views}
}

type cartesianNSizedView[T any] struct {
	cartesianNView[T]
	size int
}

func (c cartesianNSizedView[T]) Len() int { return c.size }

type cartesianNIterator[T any] struct {
	views   []View[T]
	its     []Iterator[T]
	current []T
	started bool
}

func (it *cartesianNIterator[T]) Next() bool {
	if len(it.views) == 0 {
		if it.started {
			return false
		}
		it.started = true
		it.current = []T{}
		return true
	}
	if !it.started {
		it.started = true
		it.its = make([]Iterator[T], len(it.views))
		it.current = make([]T, len(it.views))
		for i, v := range it.views {
			it.its[i] = v.Iter()
			if !it.its[i].Next() {
				return false
			}
			it.current[i] = it.its[i].Value()
		}
		return true
	}
	// Carry starting from the rightmost (fastest-varying) dimension.
	for i := len(it.its) - 1; i >= 0; i-- {
		if it.its[i].Next() {
			it.current[i] = it.its[i].Value()
			return true
		}
		if i == 0 {
			return false
		}
		it.its[i] = it.views[i].Iter()
		if !it.its[i].Next() {
			return false
		}
		it.current[i] = it.its[i].Value()
	}
	return true
}

func (it *cartesianNIterator[T]) Value() []T {
	out := make([]T, len(it.current))
	copy(out, it.current)
	return out
}
