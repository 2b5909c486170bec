package golazy

// ChunksIf groups the source into consecutive runs delimited by adjacent
// pairs that fail pred: a new chunk starts whenever pred(prev, cur) is
// false. Never Sized up front — the number of chunks depends on how many
// breaks occur, which is only known by consuming the source.
func ChunksIf[T any](v View[T], pred func(prev, cur T) bool) View[[]T] {
	return chunksIfView[T]{src: v, pred: pred}
}

type chunksIfView[T any] struct {
	src  View[T]
	pred func(prev, cur T) bool
}

func (c chunksIfView[T]) Iter() Iterator[[]T] {
	return &chunksIfIterator[T]{src: c.src.Iter(), pred: c.pred}
}

type chunksIfIterator[T any] struct {
	src     Iterator[T]
	pred    func(prev, cur T) bool
	pending T
	havePending bool
	v       []T
	done    bool
}

func (it *chunksIfIterator[T]) Next() bool {
	if it.done {
		return false
	}
	var chunk []T
	if it.havePending {
		chunk = append(chunk, it.pending)
		it.havePending = false
	} else if it.src.Next() {
		chunk = append(chunk, it.src.Value())
	} else {
		it.done = true
		return false
	}
	for it.src.Next() {
		cur := it.src.Value()
		if it.pred(chunk[len(chunk)-1], cur) {
			chunk = append(chunk, cur)
			continue
		}
		it.pending = cur
		it.havePending = true
		break
	}
	it.v = chunk
	return true
}

func (it *chunksIfIterator[T]) Value() []T { return it.v }
