package golazy

// Filter returns a view yielding only the elements of v for which pred
// returns true.
//
// The result is Reversible iff v is Reversible (filtering can never be
// stronger than bidirectional: a predicate forces a linear scan to find the
// next/previous matching element, so random access is never offered, even
// over a RandomAccess source). Filter is never Sized; counting matches
// requires a full scan, so golazy deliberately does not offer an O(1) Len
// that lies about its cost.
func Filter[T any](v View[T], pred func(T) bool) View[T] {
	base := filterView[T]{src: v, pred: pred}
	if _, ok := TryReverse(v); ok {
		return filterReversibleView[T]{base}
	}
	return base
}

// FilterClosure partially applies Filter for use with Pipe/Pipeline.
func FilterClosure[T any](pred func(T) bool) Closure[T, T] {
	return func(v View[T]) View[T] { return Filter(v, pred) }
}

type filterView[T any] struct {
	src  View[T]
	pred func(T) bool
}

func (f filterView[T]) Iter() Iterator[T] {
	return &filterIterator[T]{upstream: f.src.Iter(), pred: f.pred}
}

// filterReversibleView is the concrete type Filter returns when its source
// is Reversible; its mere existence (as opposed to a runtime panic inside a
// universally-present method) is what keeps Filter's Reversible-ness
// honestly tied to its source's capability, since TryReverse does a type
// assertion rather than calling a method that might not be meaningful.
type filterReversibleView[T any] struct {
	filterView[T]
}

func (f filterReversibleView[T]) ReverseIter() Iterator[T] {
	rev, _ := TryReverse(f.src)
	return &filterIterator[T]{upstream: rev, pred: f.pred}
}

type filterIterator[T any] struct {
	upstream Iterator[T]
	pred     func(T) bool
}

// Next advances upstream while !pred(*it), matching the source
// specification's "begin(): advances from source-begin while !P(*it)" and
// "increment: ++it; while (it!=e && !P(*it)) ++it;" in a single rule, since
// a pull Iterator makes begin-skip and increment-skip the same loop.
func (it *filterIterator[T]) Next() bool {
	for it.upstream.Next() {
		if it.pred(it.upstream.Value()) {
			return true
		}
	}
	return false
}

func (it *filterIterator[T]) Value() T {
	return it.upstream.Value()
}
