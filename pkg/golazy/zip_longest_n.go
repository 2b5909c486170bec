package golazy

// ZipLongest3 is ZipLongest2 extended to three inputs. It is Sized iff
// every input is Sized (size = max of the sizes); unlike ZipLongest2 it is
// never Reversible.
func ZipLongest3[A, B, C any](a View[A], b View[B], c View[C]) View[Triple[Option[A], Option[B], Option[C]]] {
	base := zipLongest3View[A, B, C]{a, b, c}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	sizeC, sizedC := Len(c)
	if sizedA && sizedB && sizedC {
		return zipLongest3SizedView[A, B, C]{base, max(max(sizeA, sizeB), sizeC)}
	}
	return base
}

type zipLongest3View[A, B, C any] struct {
	a View[A]
	b View[B]
	c View[C]
}

func (z zipLongest3View[A, B, C]) Iter() Iterator[Triple[Option[A], Option[B], Option[C]]] {
	return &zipLongest3Iterator[A, B, C]{a: z.a.Iter(), b: z.b.Iter(), c: z.c.Iter()}
}

type zipLongest3Iterator[A, B, C any] struct {
	a                    Iterator[A]
	b                    Iterator[B]
	c                    Iterator[C]
	aDone, bDone, cDone  bool
	v                    Triple[Option[A], Option[B], Option[C]]
}

func (it *zipLongest3Iterator[A, B, C]) Next() bool {
	var pa Option[A]
	var pb Option[B]
	var pc Option[C]
	got := false
	if !it.aDone {
		if it.a.Next() {
			pa, got = Some(it.a.Value()), true
		} else {
			it.aDone = true
		}
	}
	if !it.bDone {
		if it.b.Next() {
			pb, got = Some(it.b.Value()), true
		} else {
			it.bDone = true
		}
	}
	if !it.cDone {
		if it.c.Next() {
			pc, got = Some(it.c.Value()), true
		} else {
			it.cDone = true
		}
	}
	if !got {
		return false
	}
	it.v = Triple[Option[A], Option[B], Option[C]]{First: pa, Second: pb, Third: pc}
	return true
}

func (it *zipLongest3Iterator[A, B, C]) Value() Triple[Option[A], Option[B], Option[C]] {
	return it.v
}

type zipLongest3SizedView[A, B, C any] struct {
	zipLongest3View[A, B, C]
	size int
}

func (z zipLongest3SizedView[A, B, C]) Len() int { return z.size }

// ZipLongest4 is ZipLongest2 extended to four inputs. It is Sized iff
// every input is Sized (size = max of the sizes); unlike ZipLongest2 it is
// never Reversible.
func ZipLongest4[A, B, C, D any](a View[A], b View[B], c View[C], d View[D]) View[Quad[Option[A], Option[B], Option[C], Option[D]]] {
	base := zipLongest4View[A, B, C, D]{a, b, c, d}
	sizeA, sizedA := Len(a)
	sizeB, sizedB := Len(b)
	sizeC, sizedC := Len(c)
	sizeD, sizedD := Len(d)
	if sizedA && sizedB && sizedC && sizedD {
		return zipLongest4SizedView[A, B, C, D]{base, max(max(sizeA, sizeB), max(sizeC, sizeD))}
	}
	return base
}

type zipLongest4View[A, B, C, D any] struct {
	a View[A]
	b View[B]
	c View[C]
	d View[D]
}

func (z zipLongest4View[A, B, C, D]) Iter() Iterator[Quad[Option[A], Option[B], Option[C], Option[D]]] {
	return &zipLongest4Iterator[A, B, C, D]{a: z.a.Iter(), b: z.b.Iter(), c: z.c.Iter(), d: z.d.Iter()}
}

type zipLongest4Iterator[A, B, C, D any] struct {
	a                           Iterator[A]
	b                           Iterator[B]
	c                           Iterator[C]
	d                           Iterator[D]
	aDone, bDone, cDone, dDone  bool
	v                           Quad[Option[A], Option[B], Option[C], Option[D]]
}

func (it *zipLongest4Iterator[A, B, C, D]) Next() bool {
	var pa Option[A]
	var pb Option[B]
	var pc Option[C]
	var pd Option[D]
	got := false
	if !it.aDone {
		if it.a.Next() {
			pa, got = Some(it.a.Value()), true
		} else {
			it.aDone = true
		}
	}
	if !it.bDone {
		if it.b.Next() {
			pb, got = Some(it.b.Value()), true
		} else {
			it.bDone = true
		}
	}
	if !it.cDone {
		if it.c.Next() {
			pc, got = Some(it.c.Value()), true
		} else {
			it.cDone = true
		}
	}
	if !it.dDone {
		if it.d.Next() {
			pd, got = Some(it.d.Value()), true
		} else {
			it.dDone = true
		}
	}
	if !got {
		return false
	}
	it.v = Quad[Option[A], Option[B], Option[C], Option[D]]{First: pa, Second: pb, Third: pc, Fourth: pd}
	return true
}

func (it *zipLongest4Iterator[A, B, C, D]) Value() Quad[Option[A], Option[B], Option[C], Option[D]] {
	return it.v
}

type zipLongest4SizedView[A, B, C, D any] struct {
	zipLongest4View[A, B, C, D]
	size int
}

func (z zipLongest4SizedView[A, B, C, D]) Len() int { return z.size }
