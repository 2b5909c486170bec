package golazy

// TakeWhile returns a view over the longest prefix of v whose elements all
// satisfy pred.
//
// Per the source specification, TakeWhile is at most Reversible (locating
// the boundary requires a scan even over a RandomAccess source), and the
// boundary position is cached after the first Iter()/ReverseIter() call so
// repeated traversals do not re-scan.
func TakeWhile[T any](v View[T], pred func(T) bool) View[T] {
	base := &whileView[T]{src: v, pred: pred, whileTake: true}
	if _, ok := TryReverse(v); ok {
		return whileReversibleView[T]{base}
	}
	return base
}

// TakeWhileClosure partially applies TakeWhile.
func TakeWhileClosure[T any](pred func(T) bool) Closure[T, T] {
	return func(v View[T]) View[T] { return TakeWhile(v, pred) }
}

// DropWhile returns a view skipping the longest prefix of v whose elements
// all satisfy pred, yielding everything from the first non-matching
// element onward.
func DropWhile[T any](v View[T], pred func(T) bool) View[T] {
	base := &whileView[T]{src: v, pred: pred, whileTake: false}
	if _, ok := TryReverse(v); ok {
		return whileReversibleView[T]{base}
	}
	return base
}

// DropWhileClosure partially applies DropWhile.
func DropWhileClosure[T any](pred func(T) bool) Closure[T, T] {
	return func(v View[T]) View[T] { return DropWhile(v, pred) }
}

// whileView backs both TakeWhile and DropWhile; its boundary (the prefix
// length satisfying pred) is computed once and cached, shared by Iter and
// ReverseIter.
type whileView[T any] struct {
	src       View[T]
	pred      func(T) bool
	whileTake bool

	primed   bool
	prefix   []T // elements satisfying pred, in order
	suffix   []T // everything after the prefix
}

func (w *whileView[T]) prime() {
	if w.primed {
		return
	}
	it := w.src.Iter()
	for it.Next() {
		val := it.Value()
		if !w.pred(val) {
			w.suffix = append(w.suffix, val)
			break
		}
		w.prefix = append(w.prefix, val)
	}
	w.suffix = append(w.suffix, collect[T](it, -1)...)
	w.primed = true
}

func (w *whileView[T]) Iter() Iterator[T] {
	w.prime()
	if w.whileTake {
		return &sliceIterator[T]{items: w.prefix}
	}
	return &sliceIterator[T]{items: w.suffix}
}

type whileReversibleView[T any] struct {
	*whileView[T]
}

func (w whileReversibleView[T]) ReverseIter() Iterator[T] {
	w.prime()
	if w.whileTake {
		return &reverseSliceIterator[T]{items: w.prefix}
	}
	return &reverseSliceIterator[T]{items: w.suffix}
}
