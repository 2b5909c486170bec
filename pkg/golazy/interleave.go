package golazy

// Interleave alternates elements from each of views round-robin,
// stopping the moment any single view is exhausted: the round-robin
// index wraps onto an exhausted iterator and the whole sequence ends
// right there, rather than letting shorter views drop out of rotation.
// Sized iff every input view is Sized: the slot at position i (0-based)
// is visited for the size_i-th and final time after i + (size_i-1)*n
// elements have already been produced, i.e. it fails its next visit at
// count i + size_i*n: the overall length is the smallest such count
// across every slot.
func Interleave[T any](views ...View[T]) View[T] {
	base := interleaveView[T]{views: views}
	n := len(views)
	if n == 0 {
		return interleaveSizedView[T]{base, 0}
	}
	size := -1
	for i, v := range views {
		sz, ok := Len(v)
		if !ok {
			return base
		}
		candidate := i + sz*n
		if size == -1 || candidate < size {
			size = candidate
		}
	}
	return interleaveSizedView[T]{base, size}
}

type interleaveView[T any] struct {
	views []View[T]
}

func (i interleaveView[T]) Iter() Iterator[T] {
	its := make([]Iterator[T], len(i.views))
	for idx, v := range i.views {
		its[idx] = v.Iter()
	}
	return &interleaveIterator[T]{its: its}
}

type interleaveIterator[T any] struct {
	its  []Iterator[T]
	next int
	done bool
	v    T
}

func (it *interleaveIterator[T]) Next() bool {
	if it.done || len(it.its) == 0 {
		return false
	}
	idx := it.next
	if !it.its[idx].Next() {
		it.done = true
		return false
	}
	it.v = it.its[idx].Value()
	it.next = (it.next + 1) % len(it.its)
	return true
}

func (it *interleaveIterator[T]) Value() T { return it.v }

type interleaveSizedView[T any] struct {
	interleaveView[T]
	size int
}

func (i interleaveSizedView[T]) Len() int { return i.size }
