package golazy

// Pair is the element type of Zip2: a tuple of one element from each input.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the element type of Zip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the element type of Zip4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Zip2 pairs up elements from a and b, stopping at the shorter input ("zip
// to the shortest", per the source specification). The result is Sized iff
// both inputs are Sized (size = min of the two sizes) and Reversible iff
// both inputs are Reversible.
func Zip2[A, B any](a View[A], b View[B]) View[Pair[A, B]] {
	base := zip2View[A, B]{a: a, b: b}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	_, revA := TryReverse(a)
	_, revB := TryReverse(b)

	if sizedA && sizedB {
		size := min(sizeA, sizeB)
		if revA && revB {
			return zip2SizedReversibleView[A, B]{zip2ReversibleView[A, B]{base}, size}
		}
		return zip2SizedView[A, B]{base, size}
	}
	if revA && revB {
		return zip2ReversibleView[A, B]{base}
	}
	return base
}

type zip2View[A, B any] struct {
	a View[A]
	b View[B]
}

func (z zip2View[A, B]) Iter() Iterator[Pair[A, B]] {
	return &zip2Iterator[A, B]{a: z.a.Iter(), b: z.b.Iter()}
}

type zip2Iterator[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
	v Pair[A, B]
}

func (it *zip2Iterator[A, B]) Next() bool {
	if !it.a.Next() || !it.b.Next() {
		return false
	}
	it.v = Pair[A, B]{First: it.a.Value(), Second: it.b.Value()}
	return true
}

func (it *zip2Iterator[A, B]) Value() Pair[A, B] { return it.v }

type zip2SizedView[A, B any] struct {
	zip2View[A, B]
	size int
}

func (z zip2SizedView[A, B]) Len() int { return z.size }

// zip2ReversibleView positions every upstream iterator at exactly min_size
// past its own begin before reversing, per the source specification's rule
// for constructing a bidirectional zip's end: for each input, prefer
// whichever of (begin + min_size) or (end - (size - min_size)) is cheaper,
// so construction stays O(min_size) rather than O(sum of sizes).
type zip2ReversibleView[A, B any] struct {
	zip2View[A, B]
}

func (z zip2ReversibleView[A, B]) ReverseIter() Iterator[Pair[A, B]] {
	sizeA, ok := Len(z.a)
	if !ok {
		sizeA = Distance(z.a.Iter())
	}
	sizeB, ok := Len(z.b)
	if !ok {
		sizeB = Distance(z.b.Iter())
	}
	minSize := min(sizeA, sizeB)
	return &reverseZip2Iterator[A, B]{
		a: alignedHead[A](z.a, sizeA, minSize),
		b: alignedHead[B](z.b, sizeB, minSize),
	}
}

type zip2SizedReversibleView[A, B any] struct {
	zip2ReversibleView[A, B]
	size int
}

func (z zip2SizedReversibleView[A, B]) Len() int { return z.size }

type reverseZip2Iterator[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
	v Pair[A, B]
}

func (it *reverseZip2Iterator[A, B]) Next() bool {
	if !it.a.Next() || !it.b.Next() {
		return false
	}
	it.v = Pair[A, B]{First: it.a.Value(), Second: it.b.Value()}
	return true
}

func (it *reverseZip2Iterator[A, B]) Value() Pair[A, B] { return it.v }

// alignedHead returns a reverse Iterator over v's first minSize elements
// (positions minSize-1 down to 0) — the portion of v that actually
// participates in a zip stopping at the shortest input. It chooses the
// cheaper of walking forward minSize steps from the start (collecting the
// head, then reversing it) or walking back (size-minSize) steps from the
// end (discarding the tail that zip never visits, then continuing the
// reverse walk natively), matching the source specification's
// min-distance rule for constructing a bidirectional zip's end.
func alignedHead[T any](v View[T], size, minSize int) Iterator[T] {
	fromHead := minSize
	fromTail := size - minSize
	if fromHead <= fromTail {
		it := v.Iter()
		items := make([]T, 0, minSize)
		for i := 0; i < minSize && it.Next(); i++ {
			items = append(items, it.Value())
		}
		return &reverseSliceIterator[T]{items: items}
	}
	rev, _ := TryReverse(v)
	for i := 0; i < fromTail; i++ {
		rev.Next()
	}
	return rev
}
