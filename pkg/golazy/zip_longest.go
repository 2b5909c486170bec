package golazy

// ZipLongest2 pairs up elements from a and b, continuing until *both* are
// exhausted. Exhausted slots yield None. The result is Sized iff both
// inputs are Sized, with size = max(size(a), size(b)).
//
// Reverse iteration (when both inputs are Reversible and Sized) is
// provided by materializing the full longest-aligned sequence once and
// walking the cached slice backward; this module does not attempt the
// source specification's decrement-only-at-effective-index optimization
// for avoiding a full materialization, trading a bit of memory for a much
// simpler, obviously-correct implementation (recorded in DESIGN.md).
func ZipLongest2[A, B any](a View[A], b View[B]) View[Pair[Option[A], Option[B]]] {
	base := zipLongest2View[A, B]{a: a, b: b}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	_, revA := TryReverse(a)
	_, revB := TryReverse(b)

	if sizedA && sizedB {
		size := max(sizeA, sizeB)
		if revA && revB {
			return zipLongest2SizedReversibleView[A, B]{zipLongest2ReversibleView[A, B]{base}, size}
		}
		return zipLongest2SizedView[A, B]{base, size}
	}
	return base
}

type zipLongest2View[A, B any] struct {
	a View[A]
	b View[B]
}

func (z zipLongest2View[A, B]) Iter() Iterator[Pair[Option[A], Option[B]]] {
	return &zipLongest2Iterator[A, B]{a: z.a.Iter(), b: z.b.Iter()}
}

type zipLongest2Iterator[A, B any] struct {
	a            Iterator[A]
	b            Iterator[B]
	aDone, bDone bool
	v            Pair[Option[A], Option[B]]
}

func (it *zipLongest2Iterator[A, B]) Next() bool {
	var pa Option[A]
	var pb Option[B]
	got := false
	if !it.aDone {
		if it.a.Next() {
			pa = Some(it.a.Value())
			got = true
		} else {
			it.aDone = true
		}
	}
	if !it.bDone {
		if it.b.Next() {
			pb = Some(it.b.Value())
			got = true
		} else {
			it.bDone = true
		}
	}
	if !got {
		return false
	}
	it.v = Pair[Option[A], Option[B]]{First: pa, Second: pb}
	return true
}

func (it *zipLongest2Iterator[A, B]) Value() Pair[Option[A], Option[B]] { return it.v }

type zipLongest2SizedView[A, B any] struct {
	zipLongest2View[A, B]
	size int
}

func (z zipLongest2SizedView[A, B]) Len() int { return z.size }

type zipLongest2ReversibleView[A, B any] struct {
	zipLongest2View[A, B]
}

func (z zipLongest2ReversibleView[A, B]) ReverseIter() Iterator[Pair[Option[A], Option[B]]] {
	items := collect[Pair[Option[A], Option[B]]](z.Iter(), -1)
	return &reverseSliceIterator[Pair[Option[A], Option[B]]]{items: items}
}

type zipLongest2SizedReversibleView[A, B any] struct {
	zipLongest2ReversibleView[A, B]
	size int
}

func (z zipLongest2SizedReversibleView[A, B]) Len() int { return z.size }
