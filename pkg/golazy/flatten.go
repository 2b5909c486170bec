package golazy

// Flatten1 is the trivial case: a view of views of depth 1 flattened to
// depth 0 is just the input view itself (no-op, provided for symmetry
// with Flatten2..4 and with the source specification's depth-indexed
// naming).
func Flatten1[T any](v View[T]) View[T] {
	return v
}

// Flatten2 flattens a view of views one level: View[View[T]] -> View[T].
// The result is never Sized or RandomAccess (the total element count isn't
// known without consuming every inner view) and never Reversible: it is
// forward-only whatever the capabilities of the outer and inner views.
func Flatten2[T any](v View[View[T]]) View[T] {
	return flattenView[T]{outer: v}
}

type flattenView[T any] struct {
	outer View[View[T]]
}

func (f flattenView[T]) Iter() Iterator[T] {
	return &flattenIterator[T]{outer: f.outer.Iter()}
}

type flattenIterator[T any] struct {
	outer Iterator[View[T]]
	inner Iterator[T]
	v     T
}

func (it *flattenIterator[T]) Next() bool {
	for {
		if it.inner != nil && it.inner.Next() {
			it.v = it.inner.Value()
			return true
		}
		if !it.outer.Next() {
			return false
		}
		it.inner = it.outer.Value().Iter()
	}
}

func (it *flattenIterator[T]) Value() T { return it.v }

// Flatten3 flattens a view of views of views two levels: nested depth 2
// down to depth 0.
func Flatten3[T any](v View[View[View[T]]]) View[T] {
	return Flatten2[T](Map[View[View[T]], View[T]](v, func(mid View[View[T]]) View[T] {
		return Flatten2[T](mid)
	}))
}

// Flatten4 flattens three levels of nesting down to depth 0.
func Flatten4[T any](v View[View[View[View[T]]]]) View[T] {
	return Flatten2[T](Map[View[View[View[T]]], View[T]](v, func(mid View[View[View[T]]]) View[T] {
		return Flatten3[T](mid)
	}))
}

// FlattenAny flattens exactly one level of a view of []T (a concrete,
// already homogeneous representation) as it iterates, without attempting
// to recover static capability information. It does not recurse into
// deeper nesting: each []T is emitted element by element as it is.
func FlattenAny[T any](v View[[]T]) View[T] {
	return flattenAnyView[T]{outer: v}
}

type flattenAnyView[T any] struct {
	outer View[[]T]
}

func (f flattenAnyView[T]) Iter() Iterator[T] {
	return &flattenAnyIterator[T]{outer: f.outer.Iter()}
}

type flattenAnyIterator[T any] struct {
	outer Iterator[[]T]
	inner []T
	pos   int
	v     T
}

func (it *flattenAnyIterator[T]) Next() bool {
	for {
		if it.inner != nil && it.pos < len(it.inner) {
			it.v = it.inner[it.pos]
			it.pos++
			return true
		}
		if !it.outer.Next() {
			return false
		}
		it.inner = it.outer.Value()
		it.pos = 0
	}
}

func (it *flattenAnyIterator[T]) Value() T { return it.v }
