package golazy

import "log/slog"

// Trace wraps v so every element pulled through it is logged at Debug
// level under label before being passed through unchanged. Capability is
// preserved exactly: the returned view is Sized/Reversible/RandomAccess
// iff v is, since logging is a side effect of iteration, not a property
// of the view itself.
func Trace[T any](label string, v View[T]) View[T] {
	size, sized := Len(v)
	_, reversible := TryReverse(v)
	ra, random := TryRandomAccess(v)

	if random {
		return traceRandomAccessView[T]{label: label, src: ra}
	}
	base := traceView[T]{label: label, src: v}
	switch {
	case sized && reversible:
		return traceSizedReversibleView[T]{traceReversibleView[T]{base}, size}
	case sized:
		return traceSizedView[T]{base, size}
	case reversible:
		return traceReversibleView[T]{base}
	default:
		return base
	}
}

type traceView[T any] struct {
	label string
	src   View[T]
}

func (t traceView[T]) Iter() Iterator[T] {
	return &traceIterator[T]{label: t.label, src: t.src.Iter()}
}

type traceIterator[T any] struct {
	label string
	src   Iterator[T]
	idx   int
	v     T
}

func (it *traceIterator[T]) Next() bool {
	if !it.src.Next() {
		slog.Debug(it.label, "index", it.idx, "exhausted", true)
		return false
	}
	it.v = it.src.Value()
	slog.Debug(it.label, "index", it.idx, "value", it.v)
	it.idx++
	return true
}

func (it *traceIterator[T]) Value() T { return it.v }

type traceSizedView[T any] struct {
	traceView[T]
	size int
}

func (t traceSizedView[T]) Len() int { return t.size }

type traceReversibleView[T any] struct {
	traceView[T]
}

func (t traceReversibleView[T]) ReverseIter() Iterator[T] {
	rev, _ := TryReverse(t.src)
	return &traceIterator[T]{label: t.label, src: rev}
}

type traceSizedReversibleView[T any] struct {
	traceReversibleView[T]
	size int
}

func (t traceSizedReversibleView[T]) Len() int { return t.size }

type traceRandomAccessView[T any] struct {
	label string
	src   RandomAccess[T]
}

func (t traceRandomAccessView[T]) Iter() Iterator[T] {
	return &traceIterator[T]{label: t.label, src: t.src.Iter()}
}

func (t traceRandomAccessView[T]) Len() int { return t.src.Len() }

func (t traceRandomAccessView[T]) At(i int) T {
	v := t.src.At(i)
	slog.Debug(t.label, "index", i, "value", v)
	return v
}

func (t traceRandomAccessView[T]) ReverseIter() Iterator[T] {
	return &traceIterator[T]{label: t.label, src: &randomAccessReverseIterator[T]{src: t.src, pos: t.src.Len()}}
}
