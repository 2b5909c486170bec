package golazy

import "sort"

// Number is satisfied by every built-in integer and floating-point type,
// the constraint Mean and Median need since both produce a float64
// average regardless of the source element type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Mean returns the arithmetic mean of v's elements, and whether v was
// non-empty.
func Mean[T Number](v View[T]) (float64, bool) {
	var sum float64
	n := 0
	it := v.Iter()
	for it.Next() {
		sum += float64(it.Value())
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Median returns the median of v's elements (the average of the two
// middle elements for an even-length input), and whether v was
// non-empty. It materializes and sorts its own copy of v, so it does
// not require v to already be sorted or RandomAccess.
func Median[T Number](v View[T]) (float64, bool) {
	items := ToSlice(v)
	n := len(items)
	if n == 0 {
		return 0, false
	}
	sorted := make([]float64, n)
	for i, x := range items {
		sorted[i] = float64(x)
	}
	sort.Float64s(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}
