package golazy

// Zip3 pairs up elements from a, b and c, stopping at the shortest input.
// Same sizedness/reversibility rules as Zip2, extended to three inputs.
func Zip3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[A, B, C]] {
	base := zip3View[A, B, C]{a, b, c}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	sizeC, sizedC := Len(c)
	_, revA := TryReverse(a)
	_, revB := TryReverse(b)
	_, revC := TryReverse(c)

	if sizedA && sizedB && sizedC {
		size := min(sizeA, sizeB, sizeC)
		if revA && revB && revC {
			return zip3SizedReversibleView[A, B, C]{zip3ReversibleView[A, B, C]{base}, size}
		}
		return zip3SizedView[A, B, C]{base, size}
	}
	if revA && revB && revC {
		return zip3ReversibleView[A, B, C]{base}
	}
	return base
}

type zip3View[A, B, C any] struct {
	a View[A]
	b View[B]
	c View[C]
}

func (z zip3View[A, B, C]) Iter() Iterator[Triple[A, B, C]] {
	return &zip3Iterator[A, B, C]{a: z.a.Iter(), b: z.b.Iter(), c: z.c.Iter()}
}

type zip3Iterator[A, B, C any] struct {
	a Iterator[A]
	b Iterator[B]
	c Iterator[C]
	v Triple[A, B, C]
}

func (it *zip3Iterator[A, B, C]) Next() bool {
	if !it.a.Next() || !it.b.Next() || !it.c.Next() {
		return false
	}
	it.v = Triple[A, B, C]{First: it.a.Value(), Second: it.b.Value(), Third: it.c.Value()}
	return true
}

func (it *zip3Iterator[A, B, C]) Value() Triple[A, B, C] { return it.v }

type zip3SizedView[A, B, C any] struct {
	zip3View[A, B, C]
	size int
}

func (z zip3SizedView[A, B, C]) Len() int { return z.size }

type zip3ReversibleView[A, B, C any] struct {
	zip3View[A, B, C]
}

func (z zip3ReversibleView[A, B, C]) ReverseIter() Iterator[Triple[A, B, C]] {
	sizeA, ok := Len(z.a)
	if !ok {
		sizeA = Distance(z.a.Iter())
	}
	sizeB, ok := Len(z.b)
	if !ok {
		sizeB = Distance(z.b.Iter())
	}
	sizeC, ok := Len(z.c)
	if !ok {
		sizeC = Distance(z.c.Iter())
	}
	minSize := min(sizeA, sizeB, sizeC)
	return &reverseZip3Iterator[A, B, C]{
		a: alignedHead[A](z.a, sizeA, minSize),
		b: alignedHead[B](z.b, sizeB, minSize),
		c: alignedHead[C](z.c, sizeC, minSize),
	}
}

type zip3SizedReversibleView[A, B, C any] struct {
	zip3ReversibleView[A, B, C]
	size int
}

func (z zip3SizedReversibleView[A, B, C]) Len() int { return z.size }

type reverseZip3Iterator[A, B, C any] struct {
	a Iterator[A]
	b Iterator[B]
	c Iterator[C]
	v Triple[A, B, C]
}

func (it *reverseZip3Iterator[A, B, C]) Next() bool {
	if !it.a.Next() || !it.b.Next() || !it.c.Next() {
		return false
	}
	it.v = Triple[A, B, C]{First: it.a.Value(), Second: it.b.Value(), Third: it.c.Value()}
	return true
}

func (it *reverseZip3Iterator[A, B, C]) Value() Triple[A, B, C] { return it.v }

// Zip4 pairs up elements from a, b, c and d, stopping at the shortest
// input. Same sizedness/reversibility rules as Zip2/Zip3.
func Zip4[A, B, C, D any](a View[A], b View[B], c View[C], d View[D]) View[Quad[A, B, C, D]] {
	base := zip4View[A, B, C, D]{a, b, c, d}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	sizeC, sizedC := Len(c)
	sizeD, sizedD := Len(d)
	_, revA := TryReverse(a)
	_, revB := TryReverse(b)
	_, revC := TryReverse(c)
	_, revD := TryReverse(d)

	if sizedA && sizedB && sizedC && sizedD {
		size := min(min(sizeA, sizeB), min(sizeC, sizeD))
		if revA && revB && revC && revD {
			return zip4SizedReversibleView[A, B, C, D]{zip4ReversibleView[A, B, C, D]{base}, size}
		}
		return zip4SizedView[A, B, C, D]{base, size}
	}
	if revA && revB && revC && revD {
		return zip4ReversibleView[A, B, C, D]{base}
	}
	return base
}

type zip4View[A, B, C, D any] struct {
	a View[A]
	b View[B]
	c View[C]
	d View[D]
}

func (z zip4View[A, B, C, D]) Iter() Iterator[Quad[A, B, C, D]] {
	return &zip4Iterator[A, B, C, D]{a: z.a.Iter(), b: z.b.Iter(), c: z.c.Iter(), d: z.d.Iter()}
}

type zip4Iterator[A, B, C, D any] struct {
	a Iterator[A]
	b Iterator[B]
	c Iterator[C]
	d Iterator[D]
	v Quad[A, B, C, D]
}

func (it *zip4Iterator[A, B, C, D]) Next() bool {
	if !it.a.Next() || !it.b.Next() || !it.c.Next() || !it.d.Next() {
		return false
	}
	it.v = Quad[A, B, C, D]{First: it.a.Value(), Second: it.b.Value(), Third: it.c.Value(), Fourth: it.d.Value()}
	return true
}

func (it *zip4Iterator[A, B, C, D]) Value() Quad[A, B, C, D] { return it.v }

type zip4SizedView[A, B, C, D any] struct {
	zip4View[A, B, C, D]
	size int
}

func (z zip4SizedView[A, B, C, D]) Len() int { return z.size }

type zip4ReversibleView[A, B, C, D any] struct {
	zip4View[A, B, C, D]
}

func (z zip4ReversibleView[A, B, C, D]) ReverseIter() Iterator[Quad[A, B, C, D]] {
	sizeA, ok := Len(z.a)
	if !ok {
		sizeA = Distance(z.a.Iter())
	}
	sizeB, ok := Len(z.b)
	if !ok {
		sizeB = Distance(z.b.Iter())
	}
	sizeC, ok := Len(z.c)
	if !ok {
		sizeC = Distance(z.c.Iter())
	}
	sizeD, ok := Len(z.d)
	if !ok {
		sizeD = Distance(z.d.Iter())
	}
	minSize := min(min(sizeA, sizeB), min(sizeC, sizeD))
	return &reverseZip4Iterator[A, B, C, D]{
		a: alignedHead[A](z.a, sizeA, minSize),
		b: alignedHead[B](z.b, sizeB, minSize),
		c: alignedHead[C](z.c, sizeC, minSize),
		d: alignedHead[D](z.d, sizeD, minSize),
	}
}

type zip4SizedReversibleView[A, B, C, D any] struct {
	zip4ReversibleView[A, B, C, D]
	size int
}

func (z zip4SizedReversibleView[A, B, C, D]) Len() int { return z.size }

type reverseZip4Iterator[A, B, C, D any] struct {
	a Iterator[A]
	b Iterator[B]
	c Iterator[C]
	d Iterator[D]
	v Quad[A, B, C, D]
}

func (it *reverseZip4Iterator[A, B, C, D]) Next() bool {
	if !it.a.Next() || !it.b.Next() || !it.c.Next() || !it.d.Next() {
		return false
	}
	it.v = Quad[A, B, C, D]{First: it.a.Value(), Second: it.b.Value(), Third: it.c.Value(), Fourth: it.d.Value()}
	return true
}

func (it *reverseZip4Iterator[A, B, C, D]) Value() Quad[A, B, C, D] { return it.v }
