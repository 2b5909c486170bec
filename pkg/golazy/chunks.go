package golazy

import "github.com/kaaserne/golazy/internal/contract"

// Chunks groups the source into consecutive, non-overlapping slices of
// length n (the last chunk may be shorter). Sized iff the source is
// Sized, with size = ceil(sourceSize / n). Chunks never exposes
// RandomAccess or Reversible capability: computing the boundary of the
// last (possibly short) chunk from the tail requires knowing the total
// count, which this adaptor deliberately does not attempt to support
// lazily from the back (documented simplification vs. the source
// specification's full bidirectional chunk view).
func Chunks[T any](v View[T], n int) View[[]T] {
	contract.Assertf(n > 0, "Chunks: n must be positive, got %d", n)
	base := chunksView[T]{src: v, n: n}
	if size, sized := Len(v); sized {
		return chunksSizedView[T]{base, (size + n - 1) / n}
	}
	return base
}

type chunksView[T any] struct {
	src View[T]
	n   int
}

func (c chunksView[T]) Iter() Iterator[[]T] {
	return &chunksIterator[T]{src: c.src.Iter(), n: c.n}
}

type chunksIterator[T any] struct {
	src Iterator[T]
	n   int
	v   []T
}

func (it *chunksIterator[T]) Next() bool {
	chunk := make([]T, 0, it.n)
	for len(chunk) < it.n && it.src.Next() {
		chunk = append(chunk, it.src.Value())
	}
	if len(chunk) == 0 {
		return false
	}
	it.v = chunk
	return true
}

func (it *chunksIterator[T]) Value() []T { return it.v }

type chunksSizedView[T any] struct {
	chunksView[T]
	size int
}

func (c chunksSizedView[T]) Len() int { return c.size }
