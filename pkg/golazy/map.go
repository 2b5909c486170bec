package golazy

// Map returns a view yielding f(x) for every x in v.
//
// Map's category and sizedness exactly match v's: if v is RandomAccess, so
// is the result (At(i) is f(v.At(i))); if v is Reversible, so is the
// result; if v is Sized, so is the result, with the same size. f is
// invoked fresh on every Value() call (no caching of the mapped result),
// so callers needing a stable snapshot must materialize it (To*).
func Map[T, U any](v View[T], f func(T) U) View[U] {
	_, sized := Len(v)
	_, reversible := TryReverse(v)
	ra, randomAccess := TryRandomAccess(v)

	base := mapView[T, U]{src: v, f: f}
	switch {
	case randomAccess:
		return mapRandomAccessView[T, U]{mapView[T, U]{src: ra, f: f}}
	case reversible && sized:
		return mapSizedReversibleView[T, U]{mapReversibleView[T, U]{base}}
	case reversible:
		return mapReversibleView[T, U]{base}
	case sized:
		return mapSizedView[T, U]{base}
	default:
		return base
	}
}

// MapClosure partially applies Map for use with Pipe/Pipeline.
func MapClosure[T, U any](f func(T) U) Closure[T, U] {
	return func(v View[T]) View[U] { return Map(v, f) }
}

type mapView[T, U any] struct {
	src View[T]
	f   func(T) U
}

func (m mapView[T, U]) Iter() Iterator[U] {
	return &mapIterator[T, U]{upstream: m.src.Iter(), f: m.f}
}

type mapSizedView[T, U any] struct{ mapView[T, U] }

func (m mapSizedView[T, U]) Len() int { n, _ := Len(m.src); return n }

type mapReversibleView[T, U any] struct{ mapView[T, U] }

func (m mapReversibleView[T, U]) ReverseIter() Iterator[U] {
	rev, _ := TryReverse(m.src)
	return &mapIterator[T, U]{upstream: rev, f: m.f}
}

type mapSizedReversibleView[T, U any] struct{ mapReversibleView[T, U] }

func (m mapSizedReversibleView[T, U]) Len() int { n, _ := Len(m.src); return n }

type mapRandomAccessView[T, U any] struct{ mapView[T, U] }

func (m mapRandomAccessView[T, U]) Len() int {
	ra, _ := TryRandomAccess(m.src)
	return ra.Len()
}

func (m mapRandomAccessView[T, U]) At(i int) U {
	ra, _ := TryRandomAccess(m.src)
	return m.f(ra.At(i))
}

func (m mapRandomAccessView[T, U]) ReverseIter() Iterator[U] {
	ra, _ := TryRandomAccess(m.src)
	return &mapIterator[T, U]{upstream: &randomAccessReverseIterator[T]{src: ra, pos: ra.Len()}, f: m.f}
}

type mapIterator[T, U any] struct {
	upstream Iterator[T]
	f        func(T) U
}

func (it *mapIterator[T, U]) Next() bool { return it.upstream.Next() }
func (it *mapIterator[T, U]) Value() U   { return it.f(it.upstream.Value()) }
