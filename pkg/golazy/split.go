package golazy

// Split breaks the source into consecutive runs separated by elements
// for which pred returns true; the separators themselves are dropped
// (unlike ChunksIf, which keeps every element). An input that ends on a
// separator always yields one final, empty trailing group — matching
// strings.Split's own convention and resolving the source
// specification's version-dependent ambiguity in the direction it
// documents as canonical. Never Sized up front: the number of resulting
// groups depends on how many separators occur.
func Split[T any](v View[T], pred func(T) bool) View[[]T] {
	return splitView[T]{src: v, pred: pred}
}

type splitView[T any] struct {
	src  View[T]
	pred func(T) bool
}

func (s splitView[T]) Iter() Iterator[[]T] {
	return &splitIterator[T]{src: s.src.Iter(), pred: s.pred}
}

type splitIterator[T any] struct {
	src      Iterator[T]
	pred     func(T) bool
	v        []T
	finished bool
}

func (it *splitIterator[T]) Next() bool {
	if it.finished {
		return false
	}
	group := []T{}
	for {
		if !it.src.Next() {
			it.finished = true
			it.v = group
			return true
		}
		cur := it.src.Value()
		if it.pred(cur) {
			it.v = group
			return true
		}
		group = append(group, cur)
	}
}

func (it *splitIterator[T]) Value() []T { return it.v }
