package golazy

// JoinWhere performs a nested-loop join: for every element a in left and
// b in right such that pred(a, b) holds, it emits combine(a, b). Never
// Sized up front, since the match count depends on pred. Equivalent to
// filtering CartesianProduct2 by pred and mapping with combine, but
// implemented directly so it never constructs the full cross product.
func JoinWhere[A, B, R any](left View[A], right View[B], pred func(A, B) bool, combine func(A, B) R) View[R] {
	return joinWhereView[A, B, R]{left: left, right: right, pred: pred, combine: combine}
}

type joinWhereView[A, B, R any] struct {
	left    View[A]
	right   View[B]
	pred    func(A, B) bool
	combine func(A, B) R
}

func (j joinWhereView[A, B, R]) Iter() Iterator[R] {
	return &joinWhereIterator[A, B, R]{
		left:    j.left.Iter(),
		right:   j.right,
		pred:    j.pred,
		combine: j.combine,
	}
}

type joinWhereIterator[A, B, R any] struct {
	left    Iterator[A]
	right   View[B]
	pred    func(A, B) bool
	combine func(A, B) R
	curA    A
	curB    Iterator[B]
	started bool
	v       R
}

func (it *joinWhereIterator[A, B, R]) Next() bool {
	for {
		if !it.started {
			if !it.left.Next() {
				return false
			}
			it.curA = it.left.Value()
			it.curB = it.right.Iter()
			it.started = true
		}
		for it.curB.Next() {
			b := it.curB.Value()
			if it.pred(it.curA, b) {
				it.v = it.combine(it.curA, b)
				return true
			}
		}
		if !it.left.Next() {
			return false
		}
		it.curA = it.left.Value()
		it.curB = it.right.Iter()
	}
}

func (it *joinWhereIterator[A, B, R]) Value() R { return it.v }
