package golazy

import "github.com/kaaserne/golazy/internal/contract"

// ToSlice drains v into a freshly allocated []T, the most common
// terminal operation and the building block several others are defined
// in terms of.
func ToSlice[T any](v View[T]) []T {
	sizeHint := -1
	if n, ok := Len(v); ok {
		sizeHint = n
	}
	return collect(v.Iter(), sizeHint)
}

// ToMap drains v, applying key to every element to build a map. Later
// elements overwrite earlier ones on key collision, matching ordinary Go
// map-literal semantics.
func ToMap[T any, K comparable, V any](v View[T], key func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	it := v.Iter()
	for it.Next() {
		k, val := key(it.Value())
		out[k] = val
	}
	return out
}

// ToSet drains v into a map[T]struct{}, the idiomatic Go set
// representation.
func ToSet[T comparable](v View[T]) map[T]struct{} {
	out := make(map[T]struct{})
	it := v.Iter()
	for it.Next() {
		out[it.Value()] = struct{}{}
	}
	return out
}

// ToChannel drains v into a freshly created, unbuffered channel on a new
// goroutine and returns the receive end; the channel is closed once v is
// exhausted. This is the one terminal that spawns a goroutine, and it
// does so only at the consumer's explicit request.
func ToChannel[T any](v View[T]) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		it := v.Iter()
		for it.Next() {
			ch <- it.Value()
		}
	}()
	return ch
}

// Into drains v, appending every element to dst, and returns the grown
// slice (mirroring append's own growth semantics).
func Into[T any](v View[T], dst []T) []T {
	it := v.Iter()
	for it.Next() {
		dst = append(dst, it.Value())
	}
	return dst
}

// FillArray drains v into dst starting at index 0 and reports how many
// elements were written. It panics (via contract) if v yields more
// elements than len(dst); Go generics have no way to parameterize over a
// compile-time array length, so this is the closest analogue to the
// source specification's fixed-size-array terminal.
func FillArray[T any](v View[T], dst []T) int {
	it := v.Iter()
	n := 0
	for it.Next() {
		contract.Assertf(n < len(dst), "FillArray: source has more than %d elements", len(dst))
		dst[n] = it.Value()
		n++
	}
	return n
}
