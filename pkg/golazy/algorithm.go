package golazy

import "cmp"

// NPos is returned by the Index* family when no match is found,
// mirroring std::string::npos's role as an unmistakable "not found"
// sentinel instead of a second, easily-ignored boolean.
const NPos = -1

// Find returns the first element for which pred holds, and whether one
// was found.
func Find[T any](v View[T], pred func(T) bool) (T, bool) {
	it := v.Iter()
	for it.Next() {
		if val := it.Value(); pred(val) {
			return val, true
		}
	}
	var zero T
	return zero, false
}

// FindLast returns the last element for which pred holds, and whether
// one was found. Uses ReverseIter when available; otherwise falls back
// to a full forward scan.
func FindLast[T any](v View[T], pred func(T) bool) (T, bool) {
	if it, ok := TryReverse(v); ok {
		for it.Next() {
			if val := it.Value(); pred(val) {
				return val, true
			}
		}
		var zero T
		return zero, false
	}
	var last T
	found := false
	it := v.Iter()
	for it.Next() {
		if val := it.Value(); pred(val) {
			last, found = val, true
		}
	}
	return last, found
}

// IndexOf returns the index of the first element equal to target, or
// NPos.
func IndexOf[T comparable](v View[T], target T) int {
	return IndexOfFunc(v, func(x T) bool { return x == target })
}

// IndexOfFunc returns the index of the first element for which pred
// holds, or NPos.
func IndexOfFunc[T any](v View[T], pred func(T) bool) int {
	it := v.Iter()
	i := 0
	for it.Next() {
		if pred(it.Value()) {
			return i
		}
		i++
	}
	return NPos
}

// Contains reports whether any element equals target.
func Contains[T comparable](v View[T], target T) bool {
	return IndexOf(v, target) != NPos
}

// StartsWith reports whether v begins with every element of prefix, in
// order.
func StartsWith[T comparable](v View[T], prefix View[T]) bool {
	vi := v.Iter()
	pi := prefix.Iter()
	for pi.Next() {
		if !vi.Next() || vi.Value() != pi.Value() {
			return false
		}
	}
	return true
}

// EndsWith reports whether v ends with every element of suffix, in
// order. Requires both v and suffix to be Sized.
func EndsWith[T comparable](v View[T], suffix View[T]) bool {
	vSize, ok1 := Len(v)
	sSize, ok2 := Len(suffix)
	if !ok1 || !ok2 || sSize > vSize {
		return false
	}
	return StartsWith[T](Drop[T](v, vSize-sSize), suffix)
}

// Partition reports whether pred holds for a prefix of v and fails for
// the remaining suffix, i.e. v is already partitioned around pred.
func Partition[T any](v View[T], pred func(T) bool) bool {
	it := v.Iter()
	seenFalse := false
	for it.Next() {
		if pred(it.Value()) {
			if seenFalse {
				return false
			}
		} else {
			seenFalse = true
		}
	}
	return true
}

// Accumulate folds over v left to right starting from init, matching
// the source specification's accumulate/fold terminal.
func Accumulate[T, A any](v View[T], init A, f func(acc A, cur T) A) A {
	acc := init
	it := v.Iter()
	for it.Next() {
		acc = f(acc, it.Value())
	}
	return acc
}

// ForEach calls f with every element of v, in order, purely for its
// side effects.
func ForEach[T any](v View[T], f func(T)) {
	it := v.Iter()
	for it.Next() {
		f(it.Value())
	}
}

// Copy drains v into dst starting at index 0 and returns the number of
// elements written, stopping early if dst fills up before v is
// exhausted.
func Copy[T any](v View[T], dst []T) int {
	it := v.Iter()
	n := 0
	for n < len(dst) && it.Next() {
		dst[n] = it.Value()
		n++
	}
	return n
}

// Transform writes f(x) into dst[i] for the i-th element x of v, for every
// i < min(len(dst), size of v), and returns the number of elements written,
// analogous to std::transform's output-range overload.
func Transform[T any](v View[T], dst []T, f func(T) T) int {
	it := v.Iter()
	n := 0
	for n < len(dst) && it.Next() {
		dst[n] = f(it.Value())
		n++
	}
	return n
}

// Equal reports whether a and b produce the same elements in the same
// order. If both are Sized their lengths are compared first as a fast
// rejection.
func Equal[T comparable](a, b View[T]) bool {
	if sa, ok := Len(a); ok {
		if sb, ok := Len(b); ok && sa != sb {
			return false
		}
	}
	ai, bi := a.Iter(), b.Iter()
	for {
		an, bn := ai.Next(), bi.Next()
		if an != bn {
			return false
		}
		if !an {
			return true
		}
		if ai.Value() != bi.Value() {
			return false
		}
	}
}

// LowerBound returns the index of the first element >= target in a
// sorted, RandomAccess view, or the view's length if none qualifies.
func LowerBound[T cmp.Ordered](v RandomAccess[T], target T) int {
	lo, hi := 0, v.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v.At(mid) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the index of the first element > target in a
// sorted, RandomAccess view, or the view's length if none qualifies.
func UpperBound[T cmp.Ordered](v RandomAccess[T], target T) int {
	lo, hi := 0, v.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v.At(mid) <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// BinarySearch reports whether target is present in a sorted,
// RandomAccess view.
func BinarySearch[T cmp.Ordered](v RandomAccess[T], target T) bool {
	i := LowerBound[T](v, target)
	return i < v.Len() && v.At(i) == target
}

// AllOf reports whether pred holds for every element of v.
func AllOf[T any](v View[T], pred func(T) bool) bool {
	it := v.Iter()
	for it.Next() {
		if !pred(it.Value()) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for at least one element of v.
func AnyOf[T any](v View[T], pred func(T) bool) bool {
	it := v.Iter()
	for it.Next() {
		if pred(it.Value()) {
			return true
		}
	}
	return false
}

// NoneOf reports whether pred holds for no element of v.
func NoneOf[T any](v View[T], pred func(T) bool) bool {
	return !AnyOf(v, pred)
}

// AdjacentFind returns the index of the first adjacent pair for which
// pred holds, or NPos.
func AdjacentFind[T any](v View[T], pred func(a, b T) bool) int {
	it := v.Iter()
	if !it.Next() {
		return NPos
	}
	prev := it.Value()
	i := 0
	for it.Next() {
		cur := it.Value()
		if pred(prev, cur) {
			return i
		}
		prev = cur
		i++
	}
	return NPos
}

// Count reports how many elements equal target.
func Count[T comparable](v View[T], target T) int {
	return CountIf(v, func(x T) bool { return x == target })
}

// CountIf reports how many elements satisfy pred.
func CountIf[T any](v View[T], pred func(T) bool) int {
	n := 0
	it := v.Iter()
	for it.Next() {
		if pred(it.Value()) {
			n++
		}
	}
	return n
}

// IsSorted reports whether v is non-decreasing according to less.
func IsSorted[T any](v View[T], less func(a, b T) bool) bool {
	it := v.Iter()
	if !it.Next() {
		return true
	}
	prev := it.Value()
	for it.Next() {
		cur := it.Value()
		if less(cur, prev) {
			return false
		}
		prev = cur
	}
	return true
}

// MinElement returns the smallest element of v according to less, and
// whether v was non-empty.
func MinElement[T any](v View[T], less func(a, b T) bool) (T, bool) {
	it := v.Iter()
	if !it.Next() {
		var zero T
		return zero, false
	}
	best := it.Value()
	for it.Next() {
		if cur := it.Value(); less(cur, best) {
			best = cur
		}
	}
	return best, true
}

// MaxElement returns the largest element of v according to less, and
// whether v was non-empty.
func MaxElement[T any](v View[T], less func(a, b T) bool) (T, bool) {
	it := v.Iter()
	if !it.Next() {
		var zero T
		return zero, false
	}
	best := it.Value()
	for it.Next() {
		if cur := it.Value(); less(best, cur) {
			best = cur
		}
	}
	return best, true
}
