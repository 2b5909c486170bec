package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Concatenate chains views one after another, left to right. Sized iff
// every input is Sized; RandomAccess iff every input is RandomAccess and
// Sized (indexing walks the inputs in order, subtracting each one's size
// from the offset); Reversible iff every input is Reversible, or every
// input is RandomAccess and Sized (reverse iteration visits the inputs in
// reverse order, each one reversed).
func Concatenate[T any](views ...View[T]) View[T] {
	allSized := true
	allRandom := true
	allReversible := true
	total := 0
	for _, v := range views {
		n, sized := Len(v)
		if !sized {
			allSized = false
			allRandom = false
		} else {
			total += n
		}
		if _, ok := TryRandomAccess(v); !ok {
			allRandom = false
		}
		if _, ok := TryReverse(v); !ok {
			allReversible = false
		}
	}

	if allRandom {
		ras := make([]RandomAccess[T], len(views))
		for i, v := range views {
			ras[i], _ = TryRandomAccess(v)
		}
		return concatenateRandomAccessView[T]{views: ras, size: total}
	}

	base := concatenateView[T]{views: views}
	switch {
	case allSized && allReversible:
		return concatenateSizedReversibleView[T]{concatenateReversibleView[T]{base}, total}
	case allSized:
		return concatenateSizedView[T]{base, total}
	case allReversible:
		return concatenateReversibleView[T]{base}
	default:
		return base
	}
}

type concatenateView[T any] struct {
	views []View[T]
}

func (c concatenateView[T]) Iter() Iterator[T] {
	return &concatenateIterator[T]{views: c.views}
}

type concatenateIterator[T any] struct {
	views []View[T]
	idx   int
	cur   Iterator[T]
	v     T
}

func (it *concatenateIterator[T]) Next() bool {
	for {
		if it.cur == nil {
			if it.idx >= len(it.views) {
				return false
			}
			it.cur = it.views[it.idx].Iter()
			it.idx++
		}
		if it.cur.Next() {
			it.v = it.cur.Value()
			return true
		}
		it.cur = nil
	}
}

func (it *concatenateIterator[T]) Value() T { return it.v }

type concatenateSizedView[T any] struct {
	concatenateView[T]
	size int
}

func (c concatenateSizedView[T]) Len() int { return c.size }

type concatenateReversibleView[T any] struct {
	concatenateView[T]
}

func (c concatenateReversibleView[T]) ReverseIter() Iterator[T] {
	return &reverseConcatenateIterator[T]{views: c.views, idx: len(c.views) - 1}
}

type reverseConcatenateIterator[T any] struct {
	views []View[T]
	idx   int
	cur   Iterator[T]
	v     T
}

func (it *reverseConcatenateIterator[T]) Next() bool {
	for {
		if it.cur == nil {
			if it.idx < 0 {
				return false
			}
			rev, _ := TryReverse(it.views[it.idx])
			it.cur = rev
			it.idx--
		}
		if it.cur.Next() {
			it.v = it.cur.Value()
			return true
		}
		it.cur = nil
	}
}

func (it *reverseConcatenateIterator[T]) Value() T { return it.v }

type concatenateSizedReversibleView[T any] struct {
	concatenateReversibleView[T]
	size int
}

func (c concatenateSizedReversibleView[T]) Len() int { return c.size }

type concatenateRandomAccessView[T any] struct {
	views []RandomAccess[T]
	size  int
}

func (c concatenateRandomAccessView[T]) Iter() Iterator[T] {
	vs := make([]View[T], len(c.views))
	for i, ra := range c.views {
		vs[i] = ra
	}
	return &concatenateIterator[T]{views: vs}
}

func (c concatenateRandomAccessView[T]) Len() int { return c.size }

func (c concatenateRandomAccessView[T]) At(i int) T {
	for _, ra := range c.views {
		n := ra.Len()
		if i < n {
			return ra.At(i)
		}
		i -= n
	}
	contract.Assertf(false, "Concatenate.At: index out of range")
	var zero T
	return zero
}

// ReverseIter walks each input view back to front via At/Len directly,
// rather than through the input's own Reversible capability: every
// RandomAccess view can be reversed this way regardless of whether it
// separately implements Reversible.
func (c concatenateRandomAccessView[T]) ReverseIter() Iterator[T] {
	return &reverseConcatenateRandomAccessIterator[T]{views: c.views, idx: len(c.views) - 1}
}

type reverseConcatenateRandomAccessIterator[T any] struct {
	views []RandomAccess[T]
	idx   int
	cur   Iterator[T]
	v     T
}

func (it *reverseConcatenateRandomAccessIterator[T]) Next() bool {
	for {
		if it.cur == nil {
			if it.idx < 0 {
				return false
			}
			ra := it.views[it.idx]
			it.cur = &randomAccessReverseIterator[T]{src: ra, pos: ra.Len()}
			it.idx--
		}
		if it.cur.Next() {
			it.v = it.cur.Value()
			return true
		}
		it.cur = nil
	}
}

func (it *reverseConcatenateRandomAccessIterator[T]) Value() T { return it.v }
